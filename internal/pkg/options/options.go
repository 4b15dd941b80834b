package options

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options contains parsed flags and ENV variables.
type Options struct {
	Verbose     bool   `flag:"verbose"`     // verbose mode, print details to console
	VerboseApi  bool   `flag:"verbose-api"` // log each API request and response
	LogFilePath string `flag:"log-file"`    // path to the log file
	ApiHost     string `flag:"api-host"`    // api host, eg. "api.swimtopia.org"
	Username    string `flag:"username"`    // api account username
	Password    string `flag:"password"`    // api account password
	MeetId      string `flag:"meet-id"`     // meet to work with
	CacheDir    string `flag:"cache-dir"`   // directory with cached API documents
	OutputDir   string `flag:"output-dir"`  // directory for generated files

	WorkingDirectory string // working directory
}

// BindPersistentFlags for all commands.
func (o *Options) BindPersistentFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.StringP("working-dir", "d", "", "use other working directory")
	flags.StringP("api-host", "H", "api.swimtopia.org", "API host")
	flags.StringP("username", "u", "", "API account username")
	flags.StringP("password", "p", "", "API account password")
	flags.StringP("meet-id", "m", "", "meet ID")
	flags.String("cache-dir", "api_cache", "directory with cached API documents")
	flags.StringP("output-dir", "o", ".", "directory for generated files")
	flags.BoolP("verbose", "v", false, "print details")
	flags.Bool("verbose-api", false, "log each API request and response")
}

// Validate required options - defined by field name.
func (o *Options) Validate(required []string) string {
	var errors []string
	envNaming := &envNamingConvention{}
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)

	for _, fieldName := range required {
		fieldType, exists := types.FieldByName(fieldName)
		fieldNameHumanReadable := strcase.ToDelimited(fieldName, ' ')
		if !exists {
			panic(fmt.Sprintf("field \"%s\" doesn't exist in Options struct", fieldName))
		}

		flag := fieldType.Tag.Get("flag")
		if reflection.FieldByName(fieldName).Len() > 0 {
			continue
		}

		if len(flag) > 0 {
			errors = append(errors, fmt.Sprintf(
				`- Missing %s. Please use "--%s" flag or ENV variable "%s".`,
				fieldNameHumanReadable,
				flag,
				envNaming.Replace(flag),
			))
		} else {
			errors = append(errors, fmt.Sprintf(`- Missing %s.`, fieldNameHumanReadable))
		}
	}

	return strings.Join(errors, "\n")
}

// Load all sources of Options - flags, envs.
func (o *Options) Load(flags *pflag.FlagSet) (warnings []string, err error) {
	// Env parser
	envNaming := &envNamingConvention{}
	parser := viper.NewWithOptions(viper.EnvKeyReplacer(envNaming))

	// Bind flags
	if err = parser.BindPFlags(flags); err != nil {
		return
	}

	// Bind ENV variables
	parser.AutomaticEnv()

	// Set working directory + load .env file if present
	o.WorkingDirectory, err = getWorkingDirectory(parser)
	o.WorkingDirectory = strings.TrimRight(o.WorkingDirectory, string(os.PathSeparator))
	if err != nil {
		return
	}
	if err = loadDotEnv(o.WorkingDirectory); err != nil {
		return
	}

	// For each Options struct field with "flag" tag -> load value from parser
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflect.TypeOf(*o)
	for i := 0; i < reflection.NumField(); i++ {
		if flag := types.Field(i).Tag.Get("flag"); len(flag) > 0 {
			if value := parser.Get(flag); value != nil {
				reflection.Field(i).Set(reflect.ValueOf(value))
			}
		}
	}

	// Normalize the values into a uniform form
	o.normalize()

	return
}

func (o *Options) normalize() {
	o.ApiHost = strings.TrimRight(o.ApiHost, "/")
	o.ApiHost = strings.TrimPrefix(o.ApiHost, "https://")
	o.Username = strings.TrimSpace(o.Username)
}

// Dump Options for debugging, hide password.
func (o *Options) Dump() string {
	re := regexp.MustCompile(`(Password:"[^"]{0,2})[^"]*(")`)
	str := fmt.Sprintf("Parsed options: %#v", o)
	str = re.ReplaceAllString(str, `$1*****$2`)
	return str
}

// getWorkingDirectory from flag or by default from OS.
func getWorkingDirectory(parser *viper.Viper) (string, error) {
	value := parser.GetString("working-dir")
	if len(value) > 0 {
		return value, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot get current working directory: %s", err)
	}
	return dir, nil
}
