package config

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/habiliai/memoryclient/errors"
	"github.com/samber/lo"
)

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ResolvePlaceholders replaces every ${NAME} token in s with the value of
// the NAME environment variable. It is a single pass: substituted values are
// not rescanned. Referencing an unset or empty variable fails with
// errors.ErrMissingEnvVar naming every such variable.
func ResolvePlaceholders(s string) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}

	var missing []string
	resolved := placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		name := token[2 : len(token)-1]
		value := os.Getenv(name)
		if value == "" {
			missing = append(missing, name)
		}
		return value
	})
	if len(missing) > 0 {
		missing = lo.Uniq(missing)
		sort.Strings(missing)
		return "", errors.Wrapf(errors.ErrMissingEnvVar,
			"environment variable(s) not set: %s", strings.Join(missing, ", "))
	}

	return resolved, nil
}
