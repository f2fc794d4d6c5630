package css

import (
	"regexp"
	"strings"

	"github.com/matzehuels/colorutils/pkg/errors"
)

var functionRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*)\((.*)\)$`)

// Function is a tokenized CSS color function in the modern space-separated
// syntax, e.g. "rgb(0 255 128 / 50%)".
type Function struct {
	Name     string   // Lowercased function name
	Args     []string // Channel tokens before the slash
	Alpha    string   // Alpha token after the slash, if HasAlpha
	HasAlpha bool
}

// ParseFunction tokenizes s as name(arg arg arg[ / alpha]).
//
// Tokens are separated by whitespace; the alpha value follows a single '/'.
// Commas (legacy syntax) are rejected with INVALID_SYNTAX, as is the
// CSS "none" keyword with UNSUPPORTED_VALUE. Individual tokens are only
// checked to be number-like; unit validation is left to the caller.
func ParseFunction(s string) (Function, error) {
	m := functionRe.FindStringSubmatch(s)
	if m == nil {
		return Function{}, errors.InvalidSyntax("%q is not a CSS function", s)
	}
	fn := Function{Name: strings.ToLower(m[1])}
	body := m[2]

	if strings.Contains(body, ",") {
		return Function{}, errors.InvalidSyntax("comma-separated syntax is not supported")
	}

	channels, alpha, hasAlpha := strings.Cut(body, "/")
	if hasAlpha {
		if strings.Contains(alpha, "/") {
			return Function{}, errors.InvalidSyntax("more than one '/' in %q", s)
		}
		fields := strings.Fields(alpha)
		if len(fields) != 1 {
			return Function{}, errors.InvalidSyntax("expected exactly one alpha value after '/'")
		}
		fn.Alpha, fn.HasAlpha = fields[0], true
	}
	fn.Args = strings.Fields(channels)

	for _, tok := range fn.tokens() {
		if strings.EqualFold(tok, "none") {
			return Function{}, errors.Unsupported("the 'none' keyword is not supported")
		}
		if _, _, ok := SplitUnit(tok); !ok {
			return Function{}, errors.InvalidSyntax("unexpected token %q", tok)
		}
	}
	return fn, nil
}

// Expect checks the function name and channel count.
func (f Function) Expect(name string, args int) error {
	if f.Name != name {
		return errors.InvalidSyntax("expected %s() but found %s()", name, f.Name)
	}
	if len(f.Args) != args {
		return errors.InvalidSyntax("%s() expects %d channel values, found %d", name, args, len(f.Args))
	}
	return nil
}

func (f Function) tokens() []string {
	if f.HasAlpha {
		return append(append([]string(nil), f.Args...), f.Alpha)
	}
	return f.Args
}
