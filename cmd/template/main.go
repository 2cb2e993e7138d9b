package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eaceto/go-multiplatform-template-lib/pkg/template"
	"github.com/eaceto/go-multiplatform-template-lib/pkg/template/bind"
	"github.com/eaceto/go-multiplatform-template-lib/pkg/template/cancel"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Echo flags
	maxSize    uint64
	noValidate bool
	preCancel  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "template",
	Short: "Demo driver for the multiplatform template library",
	Long: `template exercises the library the way a bound host would:
echoing input through the validated cancellable pipeline, inspecting
GGUF model files and reporting the platform compute backend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var echoCmd = &cobra.Command{
	Use:   "echo [text]",
	Short: "Run text through the validated echo pipeline",
	Long: `Echoes the given text back through the full pipeline: two
cancellation checkpoints, size validation, content validation, reply.

The size limit and validation switch come from the config file when
--config is given; flags override the file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEcho,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a uniform random value in [0.0, 1.0)",
	RunE:  runRandom,
}

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Report the compute backend for this platform",
	RunE:  runBackend,
}

var modelCmd = &cobra.Command{
	Use:   "model [path]",
	Short: "Describe a GGUF model file without loading it",
	Args:  cobra.ExactArgs(1),
	RunE:  runModel,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	echoCmd.Flags().Uint64Var(&maxSize, "max-size", 0, "Override the maximum input size in bytes")
	echoCmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip content validation")
	echoCmd.Flags().BoolVar(&preCancel, "cancelled", false, "Pre-cancel the shared signal to show the cancellation path")

	rootCmd.AddCommand(echoCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(backendCmd)
	rootCmd.AddCommand(modelCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// echoConfig resolves the effective pipeline configuration: defaults,
// then the config file, then flags.
func echoConfig(cmd *cobra.Command) (template.Config, error) {
	cfg := template.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = template.LoadConfig(configPath)
		if err != nil {
			return template.Config{}, err
		}
	}

	max := cfg.MaxInputSize()
	if cmd.Flags().Changed("max-size") {
		max = maxSize
	}
	validation := cfg.ValidationEnabled()
	if noValidate {
		validation = false
	}
	return template.NewConfig(max, validation), nil
}

func runEcho(cmd *cobra.Command, args []string) error {
	cfg, err := echoConfig(cmd)
	if err != nil {
		return err
	}

	sig := cancel.New()
	if preCancel {
		sig.Cancel()
	}

	input := strings.Join(args, " ")
	logger.Debug("echoing",
		zap.Int("bytes", len(input)),
		zap.Uint64("max_size", cfg.MaxInputSize()),
		zap.Bool("validation", cfg.ValidationEnabled()))

	out, err := cfg.Echo(cmd.Context(), input, sig)
	if err != nil {
		flat := bind.Flatten(err)
		logger.Error("echo failed",
			zap.String("kind", flat.Kind),
			zap.String("message", flat.Message))
		return err
	}
	if out == nil {
		fmt.Println("(no reply: empty input)")
		return nil
	}

	fmt.Printf("text:      %s\n", out.Text())
	fmt.Printf("length:    %d bytes\n", out.Length())
	fmt.Printf("timestamp: %d\n", out.Timestamp())
	fmt.Printf("id:        %s\n", out.Id())
	return nil
}

func runRandom(cmd *cobra.Command, args []string) error {
	fmt.Println(template.Random())
	return nil
}

func runBackend(cmd *cobra.Command, args []string) error {
	fmt.Println(bind.BackendInfo())
	return nil
}

func runModel(cmd *cobra.Command, args []string) error {
	md, err := bind.LoadModelMetadata(args[0])
	if err != nil {
		flat := bind.Flatten(err)
		logger.Error("model inspection failed",
			zap.String("kind", flat.Kind),
			zap.String("message", flat.Message))
		return err
	}

	fmt.Printf("model type:           %s\n", md.ModelType)
	fmt.Printf("parameter count:      %s\n", md.ParameterCount)
	fmt.Printf("vocab size:           %d\n", md.VocabSize)
	fmt.Printf("context length:       %d\n", md.ContextLength)
	fmt.Printf("embedding dimensions: %d\n", md.EmbeddingDimensions)
	fmt.Printf("file size:            %d bytes\n", md.FileSizeBytes)
	return nil
}
