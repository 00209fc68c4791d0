package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	pegerrors "github.com/lgbarn/peg-solitaire-go/internal/errors"
)

// validate checks the struct tags of Config. Checks that depend on more
// than one field (holes and target against the board size) live in
// Config.Validate.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateFields runs the tag checks and reports the first failure as an
// ErrInvalidConfig.
func validateFields(c *Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		return fmt.Errorf("%s: value %v fails %s: %w", fe.Namespace(), fe.Value(), rule, pegerrors.ErrInvalidConfig)
	}
	return fmt.Errorf("%v: %w", err, pegerrors.ErrInvalidConfig)
}
