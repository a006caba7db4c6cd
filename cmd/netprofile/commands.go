package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	pg "netprofile/internal/adapters/postgres"
	"netprofile/internal/config"
	"netprofile/internal/domain"
	"netprofile/internal/services/content"
	"netprofile/internal/services/reports"
)

// scoreOutput is what `netprofile score` prints.
type scoreOutput struct {
	SkillScores domain.SkillScores   `json:"skillScores"`
	Profile     domain.ProfileResult `json:"profile"`
	Report      domain.Report        `json:"report"`
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "netprofile",
		Short: "Networking questionnaire scoring",
		Long: `netprofile scores the 36-question networking questionnaire into twelve
skill averages and a networking archetype profile.

Examples:
  netprofile score --file responses.json
  cat responses.json | netprofile score --file - --lang he --strict
  netprofile migrate status`,
		SilenceUsage: true,
	}
	root.AddCommand(newScoreCommand())
	root.AddCommand(newMigrateCommand())
	return root
}

func newScoreCommand() *cobra.Command {
	var (
		file   string
		lang   string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a JSON array of responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			responses, err := readResponses(cmd, file)
			if err != nil {
				return err
			}
			if strict {
				if err := domain.ValidateResponses(responses); err != nil {
					return err
				}
			}
			catalog, err := content.New(config.DefaultLanguage())
			if err != nil {
				return err
			}

			scores, profile := domain.Score(responses)
			report, err := reports.Build(catalog, "", lang, domain.Respondent{}, scores, profile)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(scoreOutput{SkillScores: scores, Profile: profile, Report: report})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "responses JSON file, or - for stdin")
	cmd.Flags().StringVar(&lang, "lang", "", "report language (default $DEFAULT_LANGUAGE, else en)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unknown questions and out-of-range answers")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readResponses(cmd *cobra.Command, file string) ([]domain.Response, error) {
	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var responses []domain.Response
	if err := json.NewDecoder(r).Decode(&responses); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}
	return responses, nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Run database migrations against DATABASE_URL",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsesDatabase() {
				return fmt.Errorf("DATABASE_URL is required")
			}
			ctx := cmd.Context()
			db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.PoolOptions{
				MaxConns:        int32(cfg.DBMaxConns),
				MinConns:        int32(cfg.DBMinConns),
				MaxConnLifetime: cfg.DBMaxConnLifetime,
			})
			if err != nil {
				return fmt.Errorf("db connect: %w", err)
			}
			defer db.Close()
			return db.Migrate(ctx, command)
		},
	}
}
