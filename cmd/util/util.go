package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/lib/serializer"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitEnvConfig initializes configuration from environment variables
func InitEnvConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("serbench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
	viper.SetDefault("log-level", "info")
}

// BindCommandFlags binds a command's flags, including inherited persistent
// flags, to viper
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.InheritedFlags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.Flags())
}

// ResolveFormats validates a list of requested format names against the
// serializer registry. An empty request selects every registered format.
func ResolveFormats(requested []string) ([]string, error) {
	registry := serializer.Registry()

	if len(requested) == 0 {
		names := make([]string, 0, len(registry))
		for name := range registry {
			names = append(names, name)
		}
		return names, nil
	}

	for _, name := range requested {
		if _, ok := registry[name]; !ok {
			return nil, fmt.Errorf("invalid format %s", name)
		}
	}
	return requested, nil
}
