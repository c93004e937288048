package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akashhguptaa/Legal-ChatBot/internal/adapters/driven/ai"
	configfile "github.com/akashhguptaa/Legal-ChatBot/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
	Long: `Reads and writes the TOML configuration file. Keys use dot
notation, e.g. 'embedding.provider' or 'retrieval.limit'.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the configured AI providers are reachable",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		cmd.Printf("%s is not set\n", args[0])
		return nil
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if err := configStore.Set(key, parseConfigValue(raw)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("%s = %s\n", key, raw)
	return nil
}

// parseConfigValue keeps numeric and boolean values typed in the TOML
// file instead of storing everything as strings.
func parseConfigValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	embedSettings := configfile.LoadEmbeddingSettings(configStore)
	if !embedSettings.IsConfigured() {
		cmd.Println("Embedding: not configured")
	} else if svc, err := ai.CreateAndValidateEmbeddingService(&embedSettings); err != nil {
		cmd.Println(errorStyle.Render(fmt.Sprintf("Embedding: %v", err)))
	} else {
		cmd.Printf("Embedding: %s via %s (%d dimensions)\n",
			svc.ModelName(), embedSettings.Provider, svc.Dimensions())
		svc.Close()
	}

	llmSettings := configfile.LoadLLMSettings(configStore)
	if !llmSettings.IsConfigured() {
		cmd.Println("LLM: not configured")
	} else if svc, err := ai.CreateAndValidateLLMService(&llmSettings); err != nil {
		cmd.Println(errorStyle.Render(fmt.Sprintf("LLM: %v", err)))
	} else {
		cmd.Printf("LLM: %s via %s\n", svc.ModelName(), llmSettings.Provider)
		svc.Close()
	}

	return nil
}
