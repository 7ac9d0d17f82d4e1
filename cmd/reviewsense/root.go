package main

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tsawler/reviewsense"
	"github.com/tsawler/reviewsense/internal/cache"
	"github.com/tsawler/reviewsense/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "reviewsense",
	Short: "Sentiment analysis for Hinglish and English product reviews",
	Long: `reviewsense runs a base sentiment classifier over product reviews and
adjusts each verdict with weighted keyword banks, slang, negation and
Hinglish priority markers.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./reviewsense.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.String("classifier", "", "base classifier: vader or http")
	flags.String("lexicon", "", "YAML lexicon replacing the built-in one")
	flags.String("cache", "", "sqlite file caching classifier predictions")
	flags.String("split", "", "input splitting: lines or sentences")

	rootCmd.AddCommand(newServeCmd(), newAnalyzeCmd(), newLexiconCmd())
}

var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"classifier": "classifier.kind",
	"lexicon":    "lexicon.path",
	"cache":      "cache.path",
	"split":      "input.split",
	"addr":       "server.addr",
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	if cfg, err = config.Load(v); err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	logrus.SetLevel(logger.GetLevel())
	logrus.SetFormatter(logger.Formatter)
	if used := v.ConfigFileUsed(); used != "" {
		logrus.WithField("file", used).Debug("using config file")
	}
	return nil
}

// bindFlags lets explicitly set flags win over file and environment values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return nil
}

// pipeline holds everything a command needs to analyze reviews.
type pipeline struct {
	adjuster *reviewsense.Adjuster
	splitter *reviewsense.Splitter
	closers  []func() error
}

func (p *pipeline) Close() {
	for _, c := range p.closers {
		if err := c(); err != nil {
			logrus.WithError(err).Warn("close failed")
		}
	}
}

func loadLexicon() (reviewsense.Lexicon, error) {
	if cfg.Lexicon.Path == "" {
		return reviewsense.DefaultLexicon(), nil
	}
	lex, err := reviewsense.LoadLexicon(cfg.Lexicon.Path)
	if err != nil {
		return reviewsense.Lexicon{}, fmt.Errorf("load lexicon: %w", err)
	}
	return lex, nil
}

func compileIndex() (*reviewsense.Index, error) {
	lex, err := loadLexicon()
	if err != nil {
		return nil, err
	}
	return reviewsense.Compile(lex, reviewsense.WithIndexLogger(logrus.StandardLogger()))
}

func newClassifier() (reviewsense.Classifier, string, error) {
	switch cfg.Classifier.Kind {
	case config.ClassifierHTTP:
		endpoint := cfg.Classifier.ClassifierEndpoint()
		c, err := reviewsense.NewHTTPClassifier(endpoint,
			reviewsense.WithBearerToken(cfg.Classifier.Token),
			reviewsense.WithHTTPClient(&http.Client{Timeout: cfg.Classifier.Timeout}),
		)
		return c, endpoint, err
	default:
		return reviewsense.NewVaderClassifier(), config.ClassifierVader, nil
	}
}

func buildPipeline() (*pipeline, error) {
	p := &pipeline{}

	idx, err := compileIndex()
	if err != nil {
		return nil, err
	}

	classifier, model, err := newClassifier()
	if err != nil {
		return nil, err
	}
	if cfg.Cache.Path != "" {
		store, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		p.closers = append(p.closers, store.Close)
		classifier = cache.NewClassifier(store, classifier, model, logrus.StandardLogger())
	}

	p.adjuster, err = reviewsense.NewAdjuster(idx, classifier,
		reviewsense.WithLogger(logrus.StandardLogger()),
		reviewsense.WithClassifyTimeout(cfg.Classifier.Timeout),
	)
	if err != nil {
		p.Close()
		return nil, err
	}

	mode, err := reviewsense.ParseSplitMode(cfg.Input.Split)
	if err != nil {
		p.Close()
		return nil, err
	}
	if p.splitter, err = reviewsense.NewSplitter(mode); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}
