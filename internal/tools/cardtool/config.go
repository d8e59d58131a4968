package cardtool

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	platformcmd "github.com/louisbranch/reportcard/internal/platform/cmd"
	apperrors "github.com/louisbranch/reportcard/internal/platform/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds report card command configuration.
type Config struct {
	Year      int
	Format    string
	Locale    string
	Corrected bool

	Courses   []string
	Grades    []float32
	Mutations []Mutation
}

// envConfig lists the settings that may come from the environment.
type envConfig struct {
	Year      int    `env:"REPORTCARD_YEAR"`
	Format    string `env:"REPORTCARD_FORMAT" envDefault:"text"`
	Locale    string `env:"REPORTCARD_LOCALE" envDefault:"en-US"`
	Corrected bool   `env:"REPORTCARD_CORRECTED"`
}

// ParseConfig loads environment defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var (
		defaults envConfig
		courses  string
		grades   string
		raw      []rawMutation
	)
	if err := platformcmd.ParseConfig(&defaults); err != nil {
		return Config{}, err
	}
	cfg := Config{
		Year:      defaults.Year,
		Format:    defaults.Format,
		Locale:    defaults.Locale,
		Corrected: defaults.Corrected,
	}

	fs.IntVar(&cfg.Year, "year", cfg.Year, "academic year of the report card")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
	fs.BoolVar(&cfg.Corrected, "corrected", cfg.Corrected, "disable legacy GPA and letter grade behaviors")
	fs.StringVar(&courses, "courses", "", "comma-separated course names")
	fs.StringVar(&grades, "grades", "", "comma-separated numeric grades")
	fs.Func("set-grade", "set a grade after creation, as SLOT=VALUE (repeatable)", func(v string) error {
		raw = append(raw, rawMutation{kind: MutateGrade, value: v})
		return nil
	})
	fs.Func("set-letter", "force a letter grade, as SLOT=LETTER (repeatable)", func(v string) error {
		raw = append(raw, rawMutation{kind: MutateLetter, value: v})
		return nil
	})
	fs.Func("set-course", "rename a course, as SLOT=NAME (repeatable)", func(v string) error {
		raw = append(raw, rawMutation{kind: MutateCourse, value: v})
		return nil
	})
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.Courses = splitList(courses)
	parsedGrades, err := parseGrades(grades)
	if err != nil {
		return Config{}, err
	}
	cfg.Grades = parsedGrades

	for _, r := range raw {
		m, err := parseMutation(r.kind, r.value)
		if err != nil {
			return Config{}, err
		}
		cfg.Mutations = append(cfg.Mutations, m)
	}
	return cfg, nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func parseGrades(value string) ([]float32, error) {
	parts := splitList(value)
	if parts == nil {
		return nil, nil
	}
	out := make([]float32, 0, len(parts))
	for _, part := range parts {
		grade, err := parseGrade(part)
		if err != nil {
			return nil, err
		}
		out = append(out, grade)
	}
	return out, nil
}

func parseGrade(value string) (float32, error) {
	grade, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, invalidInput(value, err)
	}
	return float32(grade), nil
}

func invalidInput(value string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeReportCardInputInvalid,
		fmt.Sprintf("invalid input %q", value),
		map[string]string{"Value": strconv.Quote(value)},
		cause,
	)
}
