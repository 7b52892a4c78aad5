package commands

import (
	"regexp"
	"strings"
	"team-bot/domain"
	"unicode"
)

const (
	CommandSplit  = "split"
	CommandConfig = "config"
	CommandStatus = "status"
	CommandHelp   = "help"
)

// Command is a message starting with the command prefix.
type Command struct {
	Name string
	Args []string
}

// Parse extracts the command of content. The command name must directly
// follow the prefix and is case-insensitive.
func Parse(prefix, content string) (Command, bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return Command{}, false
	}
	rest := content[len(prefix):]
	if rest == "" || unicode.IsSpace(rune(rest[0])) {
		return Command{}, false
	}
	fields := strings.Fields(rest)
	return Command{Name: strings.ToLower(fields[0]), Args: fields[1:]}, true
}

var (
	channelArg = regexp.MustCompile(`^(?:<#(\d+)>|(\d+))$`)
	roleArg    = regexp.MustCompile(`^(?:<@&(\d+)>|(\d+))$`)
)

// ParseID reads the id given for a channel or role setting, either as a
// mention or as a raw id.
func ParseID(field domain.SettingField, arg string) (string, bool) {
	pattern := channelArg
	if field == domain.FieldCaptain {
		pattern = roleArg
	}
	m := pattern.FindStringSubmatch(arg)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}
