package process

import "regexp"

var commandSeparators = regexp.MustCompile(`[\s/]+`)

// NameFromCommand derives a display name from a full command line.
// It is the last segment after splitting on whitespace and path separators,
// or the whole command when that segment is empty.
func NameFromCommand(command string) string {
	parts := commandSeparators.Split(command, -1)
	if name := parts[len(parts)-1]; name != "" {
		return name
	}
	return command
}
