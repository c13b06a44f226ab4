package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long: `View and change configuration: Notion credentials, the LLM
provider, webhook and watch settings.

Use subcommands to change specific keys or run the interactive wizard.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure Inklet step by step.`,
	RunE:  runConfigWizard,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configWizardCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// secretKeys lists configuration keys whose values are masked on output.
var secretKeys = map[string]bool{
	"notion.token":  true,
	"llm.api_key":   true,
	"webhook.token": true,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Notion]")
	printConfigValue(cmd, "Token", "notion.token")
	printConfigValue(cmd, "Parent page", "notion.parent_page")
	cmd.Println()

	cmd.Println("[LLM]")
	printConfigValue(cmd, "Provider", "llm.provider")
	printConfigValue(cmd, "Model", "llm.model")
	printConfigValue(cmd, "API Key", "llm.api_key")
	cmd.Println()

	cmd.Println("[Webhook]")
	printConfigValue(cmd, "Port", "webhook.port")
	printConfigValue(cmd, "Token", "webhook.token")
	cmd.Println()

	cmd.Println("[Watch]")
	printConfigValue(cmd, "Directory", "watch.dir")
	cmd.Println()

	if configStore.GetString("notion.token") == "" {
		cmd.Println("Notion is not configured. Run 'inklet config wizard' to set up.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func printConfigValue(cmd *cobra.Command, label, key string) {
	val, ok := configStore.Get(key)
	if !ok {
		cmd.Printf("  %s: (not set)\n", label)
		return
	}
	text := fmt.Sprintf("%v", val)
	if secretKeys[key] {
		text = maskSecret(text)
	}
	cmd.Printf("  %s: %s\n", label, text)
}

func runConfigWizard(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Inklet Setup Wizard")
	cmd.Println("===================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Notion credentials
	cmd.Println("Step 1: Notion")
	cmd.Println("--------------")
	cmd.Print("Enter integration token: ")
	token := readPassword()
	cmd.Println()
	if token == "" {
		return errors.New("Notion token is required")
	}
	cmd.Print("Enter parent page ID: ")
	parentPage := readLine(reader)
	if parentPage == "" {
		return errors.New("parent page ID is required")
	}
	if err := configStore.Set("notion.token", token); err != nil {
		return fmt.Errorf("failed to save Notion token: %w", err)
	}
	if err := configStore.Set("notion.parent_page", parentPage); err != nil {
		return fmt.Errorf("failed to save parent page: %w", err)
	}
	cmd.Println("Notion configured.")
	cmd.Println()

	// Step 2: LLM provider
	cmd.Println("Step 2: LLM Provider")
	cmd.Println("--------------------")
	providers := []string{"anthropic", "openai", "none"}
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p)
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	provider := providers[idx-1]

	if provider == "none" {
		if err := configStore.Set("llm.provider", ""); err != nil {
			return fmt.Errorf("failed to save LLM provider: %w", err)
		}
		cmd.Println("Memos will be published without LLM drafting.")
	} else {
		cmd.Print("Enter API key: ")
		apiKey := readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
		cmd.Print("Enter model name (empty for provider default): ")
		model := readLine(reader)

		if err := configStore.Set("llm.provider", provider); err != nil {
			return fmt.Errorf("failed to save LLM provider: %w", err)
		}
		if err := configStore.Set("llm.api_key", apiKey); err != nil {
			return fmt.Errorf("failed to save API key: %w", err)
		}
		if err := configStore.Set("llm.model", model); err != nil {
			return fmt.Errorf("failed to save model: %w", err)
		}
		cmd.Printf("LLM provider configured: %s\n", provider)
	}
	cmd.Println()

	// Step 3: Intake
	cmd.Println("Step 3: Intake (optional)")
	cmd.Println("-------------------------")
	cmd.Print("Webhook port [8787]: ")
	portInput := readLine(reader)
	port := 8787
	if portInput != "" {
		p, err := strconv.Atoi(portInput)
		if err != nil || p < 1 || p > 65535 {
			return fmt.Errorf("invalid port: %s", portInput)
		}
		port = p
	}
	if err := configStore.Set("webhook.port", port); err != nil {
		return fmt.Errorf("failed to save webhook port: %w", err)
	}

	cmd.Print("Watch directory (empty to skip): ")
	watchDir := readLine(reader)
	if watchDir != "" {
		if err := configStore.Set("watch.dir", watchDir); err != nil {
			return fmt.Errorf("failed to save watch directory: %w", err)
		}
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Printf("Saved to %s\n", configStore.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key not set: %s", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
