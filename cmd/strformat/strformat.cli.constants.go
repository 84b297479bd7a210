package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameSave     = "save"
	CmdNameList     = "list"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate    = "template"
	FlagExpression  = "expr"
	FlagName        = "name"
	FlagVersion     = "version"
	FlagArgs        = "args"
	FlagArgsFile    = "args-file"
	FlagOutput      = "output"
	FlagFormat      = "format"
	FlagConfig      = "config"
	FlagVerbose     = "verbose"
	FlagStorage     = "storage"
	FlagDSN         = "dsn"
	FlagDescription = "description"
	FlagTags        = "tags"
	FlagCreatedBy   = "created-by"
	FlagPrefix      = "prefix"
)

// Flag names - short form
const (
	FlagTemplateShort   = "t"
	FlagExpressionShort = "e"
	FlagNameShort       = "n"
	FlagArgsShort       = "a"
	FlagArgsFileShort   = "f"
	FlagOutputShort     = "o"
	FlagFormatShort     = "F"
	FlagVerboseShort    = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Argument and config file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtTOML = ".toml"
)

// Document keys and config defaults
const (
	ArgsDocumentKey      = "args"
	ConfigTagName        = "mapstructure"
	DefaultStorageDriver = "filesystem"
	DefaultStorageDSN    = ".strformat"
	TagSeparator         = ","
)

// Error messages - ALL must be constants
const (
	ErrMsgNoCommand             = "no command specified"
	ErrMsgUnknownCommand        = "unknown command"
	ErrMsgMissingTemplate       = "template source required"
	ErrMsgConflictingTemplate   = "use only one of --template, --expr and --name"
	ErrMsgMissingName           = "template name required"
	ErrMsgInvalidArgs           = "invalid arguments"
	ErrMsgArgsNotArray          = "arguments must be an array"
	ErrMsgUnsupportedFileType   = "unsupported file type"
	ErrMsgReadFileFailed        = "failed to read file"
	ErrMsgWriteOutputFailed     = "failed to write output"
	ErrMsgExecuteFailed         = "template execution failed"
	ErrMsgInvalidFormat         = "invalid output format"
	ErrMsgInvalidConfig         = "invalid configuration"
	ErrMsgInvalidBracePolicy    = "invalid brace policy"
	ErrMsgInvalidMaxSize        = "max template size cannot be negative"
	ErrMsgLoggerFailed          = "failed to create logger"
	ErrMsgFormatterFailed       = "failed to create formatter"
	ErrMsgOpenStorageFailed     = "failed to open storage"
	ErrMsgSaveFailed            = "failed to save template"
	ErrMsgListFailed            = "failed to list templates"
	ErrMsgInvalidFlags          = "invalid flags"
	ErrMsgVersionWithoutName    = "--version requires --name"
	ErrMsgJSONMarshalFailed     = "failed to marshal JSON"
	ErrMsgConfigDecoderFailed   = "failed to create config decoder"
	ErrMsgConfigDecodeFailed    = "failed to decode config"
	ErrMsgConfigUnmarshalFailed = "failed to parse config file"
)

// Help text templates
const (
	HelpMainUsage = `go-strformat - Template string formatting CLI

Usage:
    strformat <command> [options]

Commands:
    render      Format a template with arguments
    validate    Check a template and list its placeholders
    save        Store a template under a name
    list        List stored templates
    version     Show version information
    help        Show help for a command

Use "strformat help <command>" for more information about a command.`

	HelpRenderUsage = `Format a template with arguments

Usage:
    strformat render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -e, --expr <template>   Inline template
    -n, --name <name>       Stored template name
    --version <n>           Stored template version (default: latest)
    -a, --args <json>       JSON array of arguments
    -f, --args-file <file>  Arguments file (.json, .yaml, .yml, .toml)
    -o, --output <file>     Output file (default: stdout)
    --config <file>         Config file (.toml, .yaml, .yml)
    --storage <driver>      Storage driver (default: filesystem)
    --dsn <dsn>             Storage location (default: .strformat)
    -v, --verbose           Debug logging to stderr

Examples:
    strformat render -e '{0} has {1:05.1f} points' -a '["ada", 3.14159]'
    strformat render -t template.txt -f args.yaml
    strformat render -n greeting -a '[{"name": "Bob"}]'`

	HelpValidateUsage = `Check a template and list its placeholders

Usage:
    strformat validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -e, --expr <template>   Inline template
    -n, --name <name>       Stored template name
    -F, --format <format>   Output format: text, json (default: text)
    --config <file>         Config file (.toml, .yaml, .yml)

Examples:
    strformat validate -t template.txt
    strformat validate -e '{0:x} {user.name}' -F json
    cat template.txt | strformat validate -t -`

	HelpSaveUsage = `Store a template under a name

Usage:
    strformat save [options]

Options:
    -n, --name <name>       Template name (required)
    -t, --template <file>   Template file (use "-" for stdin)
    -e, --expr <template>   Inline template
    --description <text>    Description
    --tags <a,b>            Comma separated tags
    --created-by <who>      Author
    --config <file>         Config file (.toml, .yaml, .yml)
    --storage <driver>      Storage driver (default: filesystem)
    --dsn <dsn>             Storage location (default: .strformat)

Examples:
    strformat save -n invoice -t invoice.txt --tags billing,pdf
    strformat save -n greeting -e 'Hello {name}!'`

	HelpListUsage = `List stored templates

Usage:
    strformat list [options]

Options:
    --prefix <prefix>       Only names starting with prefix
    --tags <a,b>            Only templates carrying every tag
    -F, --format <format>   Output format: text, json (default: text)
    --config <file>         Config file (.toml, .yaml, .yml)
    --storage <driver>      Storage driver (default: filesystem)
    --dsn <dsn>             Storage location (default: .strformat)`

	HelpVersionUsage = `Show version information

Usage:
    strformat version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    strformat help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    save        Show help for save command
    list        Show help for list command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-strformat version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextSuccess     = "Template is valid"
	ValidationTextInvalid     = "Template is invalid"
	ValidationTextPlaceholder = "  %s at line %d, column %d"
	ValidationTextErrorFormat = "  %s at line %d, column %d"
	ValidationTextSummary     = "%d placeholder(s)"
)

// Save and list output format templates
const (
	SaveTextTemplate = "Saved %s version %d (%s)"
	ListTextTemplate = "%s\tv%d\t%s"
	ListTextEmpty    = "No templates found"
	ListTimeFormat   = "2006-01-02 15:04:05"
)

// Log messages and fields
const (
	LogMsgStorageOpened = "storage opened"
	LogFieldDriver      = "driver"
)

// CLI metadata
const (
	CLIName        = "strformat"
	CLIDescription = "Template string formatting CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	JSONIndent         = "  "
)
