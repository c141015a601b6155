// Command rhasspy-cli is a command-line interface to a Rhasspy
// voice-assistant server. One sub-command per remote API operation.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/voxmill/rhasspy-go/client"
	"github.com/voxmill/rhasspy-go/internal/config"
)

var apiURL string
var debug bool

const shortOpTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rhasspy-cli",
		Short:         "CLI for a remote Rhasspy voice-assistant server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("RHASSPY_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := "http://localhost:12101/api"
	if cfg, err := config.Load(); err == nil {
		defaultURL = cfg.APIURL
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", defaultURL, "URL of Rhasspy server API (with /api)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRestartCmd())
	rootCmd.AddCommand(newTrainProfileCmd())
	rootCmd.AddCommand(newTextToIntentCmd())
	rootCmd.AddCommand(newTextToSpeechCmd())
	rootCmd.AddCommand(newSpeechToTextCmd())
	rootCmd.AddCommand(newStreamToTextCmd())
	rootCmd.AddCommand(newWakeupCmd())
	rootCmd.AddCommand(newSayCmd())
	rootCmd.AddCommand(newGetSentencesCmd())
	rootCmd.AddCommand(newSetSentencesCmd())
	rootCmd.AddCommand(newGetCustomWordsCmd())
	rootCmd.AddCommand(newSetCustomWordsCmd())
	rootCmd.AddCommand(newGetSlotsCmd())
	rootCmd.AddCommand(newSetSlotsCmd())
	rootCmd.AddCommand(newGetProfileCmd())
	rootCmd.AddCommand(newSetProfileCmd())
	rootCmd.AddCommand(newLookupCmd())

	return rootCmd
}

// newSyncClient builds a client for one-shot synchronous commands.
func newSyncClient() *client.Client {
	return client.New(apiURL, client.WithoutExecutor())
}

// printJSON prints a value as a single JSON line, matching the output format
// scripts expect to pipe from this CLI.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(v)
}

// sentenceArgs returns the positional args, or lines from stdin when none
// were given.
func sentenceArgs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var sentences []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			sentences = append(sentences, line)
		}
	}
	return sentences, scanner.Err()
}

// loadJSONFile decodes a JSON file (or stdin when path is "-") into v.
func loadJSONFile(path string, v any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return json.NewDecoder(r).Decode(v)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get Rhasspy server version",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			version, err := c.Version(ctx)
			if err != nil {
				log.Error().Err(err).Str("api_url", apiURL).Msg("version failed")
				return err
			}
			fmt.Println(version)
			return nil
		},
	}
}

func newRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Restart the Rhasspy server",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			start := time.Now()
			result, err := c.Restart(ctx)
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("restart failed")
				return err
			}
			log.Debug().Dur("elapsed", time.Since(start)).Msg("restart completed")
			fmt.Println(result)
			return nil
		},
	}
}

func newTrainProfileCmd() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "train-profile",
		Short: "Train the Rhasspy profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Bool("no_cache", noCache).Str("api_url", apiURL).Msg("training profile")

			c := newSyncClient()
			start := time.Now()
			report, err := c.Train(cmd.Context(), noCache)
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("train failed")
				return err
			}
			log.Debug().Str("result", string(report.Result)).Dur("elapsed", time.Since(start)).Msg("train completed")
			return printJSON(report)
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Clear cache before training")
	return cmd
}

func newTextToIntentCmd() *cobra.Command {
	var handle bool

	cmd := &cobra.Command{
		Use:   "text-to-intent [text ...]",
		Short: "Recognize intent from text (reads stdin when no args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences, err := sentenceArgs(args)
			if err != nil {
				return err
			}

			c := newSyncClient()
			for _, sentence := range sentences {
				ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
				intent, err := c.TextToIntent(ctx, sentence, handle)
				cancel()
				if err != nil {
					log.Error().Err(err).Str("text", sentence).Msg("text to intent failed")
					return err
				}
				if err := printJSON(intent); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&handle, "handle", false, "Have Rhasspy handle the intent")
	return cmd
}

func newTextToSpeechCmd() *cobra.Command {
	var repeat bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "text-to-speech [text ...]",
		Short: "Generate and play speech from text",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences, err := sentenceArgs(args)
			if err != nil {
				return err
			}
			if repeat && len(sentences) == 0 {
				sentences = []string{""}
			}

			c := newSyncClient()
			for _, sentence := range sentences {
				wav, err := c.TextToSpeech(cmd.Context(), sentence, repeat)
				if err != nil {
					log.Error().Err(err).Str("text", sentence).Msg("text to speech failed")
					return err
				}
				if outPath != "" {
					if err := os.WriteFile(outPath, wav, 0o644); err != nil {
						return err
					}
					log.Debug().Str("path", outPath).Int("bytes", len(wav)).Msg("wrote WAV")
				} else {
					fmt.Printf("spoke %d bytes\n", len(wav))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&repeat, "repeat", false, "Repeat the last spoken sentence")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the WAV audio to this file")
	return cmd
}

func newSpeechToTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speech-to-text [wav ...]",
		Short: "Transcribe WAV file(s) (reads stdin when no args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()

			transcribe := func(wavData []byte) error {
				result, err := c.SpeechToText(cmd.Context(), wavData)
				if err != nil {
					log.Error().Err(err).Msg("speech to text failed")
					return err
				}
				return printJSON(result)
			}

			if len(args) == 0 {
				wavData, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				return transcribe(wavData)
			}
			for _, wavPath := range args {
				wavData, err := os.ReadFile(wavPath)
				if err != nil {
					return err
				}
				if err := transcribe(wavData); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newStreamToTextCmd() *cobra.Command {
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "stream-to-text",
		Short: "Transcribe a raw audio stream from stdin (16-bit 16Khz mono)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			text, err := c.StreamToText(cmd.Context(), bufio.NewReaderSize(os.Stdin, chunkSize))
			if err != nil {
				log.Error().Err(err).Msg("stream to text failed")
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 1024, "Number of bytes to read/send at a time")
	return cmd
}

func newWakeupCmd() *cobra.Command {
	var handle bool

	cmd := &cobra.Command{
		Use:   "wakeup",
		Short: "Wake Rhasspy up and wait for a voice command",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			intent, err := c.ListenForCommand(cmd.Context(), handle)
			if err != nil {
				log.Error().Err(err).Msg("wakeup failed")
				return err
			}
			return printJSON(intent)
		},
	}
	cmd.Flags().BoolVar(&handle, "handle", false, "Have Rhasspy handle the intent")
	return cmd
}

func newSayCmd() *cobra.Command {
	var siteID string

	cmd := &cobra.Command{
		Use:   "say [text ...]",
		Short: "Queue sentences for speech, in order, on one site",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences, err := sentenceArgs(args)
			if err != nil {
				return err
			}

			// Uses the async executor so utterances stay in order.
			c := client.New(apiURL)
			defer func() { _ = c.Close() }()

			for _, sentence := range sentences {
				ack, err := c.Say(cmd.Context(), siteID, sentence)
				if err != nil {
					log.Error().Err(err).Str("site_id", siteID).Msg("say failed")
					return err
				}
				log.Debug().Str("site_id", ack.SiteID).Str("status", ack.Status).Msg("utterance enqueued")
			}
			return c.AwaitSiteIdle(cmd.Context(), siteID)
		},
	}
	cmd.Flags().StringVar(&siteID, "site", client.DefaultSiteID, "Rhasspy site ID to speak on")
	return cmd
}

func newGetSentencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-sentences",
		Short: "Get sentence templates grouped by intent",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			sentences, err := c.GetSentences(ctx)
			if err != nil {
				log.Error().Err(err).Msg("get sentences failed")
				return err
			}
			return printJSON(sentences)
		},
	}
}

func newSetSentencesCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "set-sentences",
		Short: "Replace sentence templates from a JSON file of intent -> sentences",
		RunE: func(cmd *cobra.Command, args []string) error {
			var sentences client.Sentences
			if err := loadJSONFile(filePath, &sentences); err != nil {
				return err
			}

			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			result, err := c.SetSentences(ctx, sentences)
			if err != nil {
				log.Error().Err(err).Msg("set sentences failed")
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "-", "JSON file to read (default stdin)")
	return cmd
}

func newGetCustomWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-custom-words",
		Short: "Get custom word pronunciations grouped by word",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			words, err := c.GetCustomWords(ctx)
			if err != nil {
				log.Error().Err(err).Msg("get custom words failed")
				return err
			}
			return printJSON(words)
		},
	}
}

func newSetCustomWordsCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "set-custom-words",
		Short: "Replace custom words from a JSON file of word -> pronunciations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var words client.CustomWords
			if err := loadJSONFile(filePath, &words); err != nil {
				return err
			}

			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			result, err := c.SetCustomWords(ctx, words)
			if err != nil {
				log.Error().Err(err).Msg("set custom words failed")
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "-", "JSON file to read (default stdin)")
	return cmd
}

func newGetSlotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-slots",
		Short: "Get slot values grouped by slot name",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			slots, err := c.GetSlots(ctx)
			if err != nil {
				log.Error().Err(err).Msg("get slots failed")
				return err
			}
			return printJSON(slots)
		},
	}
}

func newSetSlotsCmd() *cobra.Command {
	var filePath string
	var appendValues bool

	cmd := &cobra.Command{
		Use:   "set-slots",
		Short: "Upload slot values from a JSON file of slot -> values",
		RunE: func(cmd *cobra.Command, args []string) error {
			var slots client.Slots
			if err := loadJSONFile(filePath, &slots); err != nil {
				return err
			}

			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			result, err := c.SetSlots(ctx, slots, !appendValues)
			if err != nil {
				log.Error().Err(err).Msg("set slots failed")
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "-", "JSON file to read (default stdin)")
	cmd.Flags().BoolVar(&appendValues, "append", false, "Append to existing slots instead of overwriting")
	return cmd
}

func newGetProfileCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "get-profile",
		Short: "Get profile settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			profile, err := c.GetProfile(ctx, defaults)
			if err != nil {
				log.Error().Err(err).Msg("get profile failed")
				return err
			}
			return printJSON(profile)
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Include default settings")
	return cmd
}

func newSetProfileCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "set-profile",
		Short: "Upload profile settings from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile map[string]any
			if err := loadJSONFile(filePath, &profile); err != nil {
				return err
			}

			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			result, err := c.SetProfile(ctx, profile)
			if err != nil {
				log.Error().Err(err).Msg("set profile failed")
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "-", "JSON file to read (default stdin)")
	return cmd
}

func newLookupCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up or guess pronunciations for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newSyncClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), shortOpTimeout)
			defer cancel()

			result, err := c.Lookup(ctx, args[0], n)
			if err != nil {
				log.Error().Err(err).Str("word", args[0]).Msg("lookup failed")
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().IntVar(&n, "n", 5, "Maximum number of guessed pronunciations")
	return cmd
}
