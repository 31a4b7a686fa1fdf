package config

const (
	defaultWordlistPath  = "/usr/share/dict/words"
	defaultCase          = CaseTitle
	defaultFirstCase     = CaseLower
	defaultSeparator     = ""
	defaultSlugSeparator = ""
	defaultMinLength     = 4
	defaultMaxLength     = 12
	defaultWordCount     = 4
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
	defaultConfigPath    = "~/.config/horsebat/config.toml"
)

// Case spellings accepted by cleanup.case and cleanup.first_case.
const (
	CaseUpper     = "upper"
	CaseLower     = "lower"
	CaseTitle     = "title"
	CaseUnchanged = "unchanged"
)

// CaseChoices lists the values accepted for cleanup.case.
var CaseChoices = []string{CaseUpper, CaseLower, CaseTitle, CaseUnchanged}

// FirstCaseChoices lists the values accepted for cleanup.first_case.
var FirstCaseChoices = []string{CaseUpper, CaseLower, CaseUnchanged}

// LogLevelChoices lists the values accepted for logging.level.
var LogLevelChoices = []string{"debug", "info", "warn", "error"}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Wordlist: Wordlist{
			Path: defaultWordlistPath,
		},
		Cleanup: Cleanup{
			Case:          defaultCase,
			FirstCase:     defaultFirstCase,
			Separator:     defaultSeparator,
			SlugSeparator: defaultSlugSeparator,
		},
		Selection: Selection{
			MinLength: defaultMinLength,
			MaxLength: defaultMaxLength,
			Random:    true,
			Unique:    true,
			WordCount: defaultWordCount,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
