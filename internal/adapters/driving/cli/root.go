// Package cli provides the command line interface for the legal
// document assistant. Commands are thin shells over the driving ports;
// all wiring happens once in the composition root.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/akashhguptaa/Legal-ChatBot/internal/adapters/driven/ai"
	configfile "github.com/akashhguptaa/Legal-ChatBot/internal/adapters/driven/config/file"
	pdfextract "github.com/akashhguptaa/Legal-ChatBot/internal/adapters/driven/extractor/pdf"
	indexfile "github.com/akashhguptaa/Legal-ChatBot/internal/adapters/driven/indexstore/file"
	"github.com/akashhguptaa/Legal-ChatBot/internal/adapters/driven/storage/sqlite"
	"github.com/akashhguptaa/Legal-ChatBot/internal/chunker"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driven"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/ports/driving"
	"github.com/akashhguptaa/Legal-ChatBot/internal/core/services"
	"github.com/akashhguptaa/Legal-ChatBot/internal/logger"
	"github.com/akashhguptaa/Legal-ChatBot/internal/segmenter"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by initServices. Tests swap these for mocks.
var (
	configStore      driven.ConfigStore
	docStore         driven.DocumentStore
	ingestService    driving.IngestService
	searchService    driving.SearchService
	routerService    driving.RouterService
	assistantService driving.AssistantService
)

// closers releases resources after a command finishes.
var closers []func() error

// wired guards against re-initialising when tests have injected services.
var wired bool

var verbose bool

// Output styles.
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var rootCmd = &cobra.Command{
	Use:   "legalchat",
	Short: "Chat with your legal documents",
	Long: `legalchat ingests legal PDFs, indexes them for semantic retrieval
and answers questions grounded in their content.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if wired {
			return nil
		}
		return initServices()
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		closeServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices is the composition root. Storage always comes up; AI
// services are optional and commands that need them check for nil.
func initServices() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	configStore = cfg

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open metadata store: %w", err)
	}
	docStore = store
	closers = append(closers, store.Close)

	indexStore, err := indexfile.NewStore("")
	if err != nil {
		return fmt.Errorf("open index store: %w", err)
	}

	settings := configfile.LoadSettings(cfg)

	embedSettings := configfile.LoadEmbeddingSettings(cfg)
	embedder, err := ai.CreateEmbeddingService(&embedSettings)
	if err != nil {
		logger.Warn("Embedding service unavailable: %v", err)
	}
	if embedder != nil {
		closers = append(closers, embedder.Close)
	}

	llmSettings := configfile.LoadLLMSettings(cfg)
	llm, err := ai.CreateLLMService(&llmSettings)
	if err != nil {
		logger.Warn("LLM service unavailable: %v", err)
	}
	if llm != nil {
		closers = append(closers, llm.Close)
	}

	if embedder != nil {
		seg := segmenter.New()
		chk := chunker.New(settings.Chunking)
		ingestService = services.NewIngestService(
			pdfextract.New(), store, indexStore, embedder, seg, chk, settings.Ingestion)
		searchService = services.NewRetrievalService(indexStore, embedder, settings.Retrieval)
	}

	routerService = services.NewRouterService(llm)
	assistantService = services.NewAssistantService(store, indexStore, llm, routerService, searchService)

	wired = true
	return nil
}

func closeServices() {
	for _, close := range closers {
		if err := close(); err != nil {
			logger.Warn("Close failed: %v", err)
		}
	}
	closers = nil
	wired = false
}
