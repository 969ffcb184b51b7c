package commands

import (
	"fmt"

	"github.com/systmms/summon-keepass/internal/config"
)

const programName = "summon-keepass"

func helpText(version string) string {
	return fmt.Sprintf(`%[1]s %[2]s
Summon provider that reads secrets from a KeePass database

USAGE:
    %[1]s <SECRET_PATH>
    %[1]s [OPTIONS]

OPTIONS:
    -h, --help       Print this help text and exit
    -V, --version    Print the version and exit

SECRET PATH FORMAT:
    group[/subgroup...]/entry[|field]

    The part before '|' is the path of group names leading to the entry,
    ending with the entry title. The optional part after '|' names the
    field to print; it defaults to 'Password'. Names are case-sensitive.

EXAMPLES:
    %[1]s simple-entry
    %[1]s aws/iam/user/robot
    %[1]s 'aws/iam/user/robot|access_key_id'
    %[1]s 'simple-entry|UserName'

CONFIGURATION:
    The database path and password are read from environment variables
    and from ~/%[3]s. Each setting is taken from the environment
    when present and from the config file otherwise.

    Environment variables:
        %[4]s    Path to the .kdbx database
        %[5]s    Database password

    Config file (~/%[3]s):
        [%[6]s]
        %[7]s=/path/to/database.kdbx
        %[8]s=your-password

EXIT CODES:
    0    The secret was printed to stdout
    1    No secret path given, configuration missing, database unreadable,
         or the entry or field could not be retrieved
    2    The secret path contains more than one '|'
`,
		programName, version,
		config.FileName, config.EnvStorePath, config.EnvStorePass,
		config.Section, config.KeyPath, config.KeyPass)
}
