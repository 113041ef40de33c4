package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"namecard/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks the config against the struct tags in structures. The
// first violation is returned; the daemon refuses to boot with a config
// it cannot trust.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("config validation: %s", v.Errors.One())
	}
	return nil
}
