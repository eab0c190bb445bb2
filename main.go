// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/CrawX/go-comment-assassin/classifier/keyword"
	"github.com/CrawX/go-comment-assassin/classifier/remote"
	"github.com/CrawX/go-comment-assassin/classifier/spamassassin"
	"github.com/CrawX/go-comment-assassin/config"
	"github.com/CrawX/go-comment-assassin/domain"
	"github.com/CrawX/go-comment-assassin/log"
	"github.com/CrawX/go-comment-assassin/mail"
	"github.com/CrawX/go-comment-assassin/moderation"
	"github.com/CrawX/go-comment-assassin/persistence"
	"github.com/CrawX/go-comment-assassin/submission"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
)

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	app := &cli.App{
		Name:  "go-comment-assassin",
		Usage: "moderates blog comments before they are published",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path of the toml configuration file",
				Value:   "config.toml",
				EnvVars: []string{"COMMENT_ASSASSIN_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "metrics-listen",
				Usage:   "IP or address, and port, to serve prometheus metrics on, overrides MetricsListen",
				EnvVars: []string{"COMMENT_ASSASSIN_METRICS_LISTEN"},
			},
		},
		Commands: []*cli.Command{
			submitCmd,
			evaluateCmd,
			reviewCmd,
			visibilityCmd("approve", "publish a held back comment", (*submission.Submitter).Approve),
			visibilityCmd("hide", "hide a published comment", (*submission.Submitter).Hide),
			visibilityCmd("delete", "delete a comment", (*submission.Submitter).Delete),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		logger.WithField("error", err).Fatal("Command failed")
	}
}

var submitCmd = &cli.Command{
	Name:  "submit",
	Usage: "moderate and store comments read as json lines",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "input",
			Usage: "file with one comment per line, - reads stdin",
			Value: "-",
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := log.Logger(log.LOG_MAIN)

		comments, err := readComments(cctx.String("input"))
		if err != nil {
			return err
		}

		return withSubmitter(cctx, func(submitter *submission.Submitter) error {
			outcomes, err := submitter.SubmitAll(cctx.Context, comments)
			if err != nil {
				return fmt.Errorf("submitting comments failed: %w", err)
			}

			for i, o := range outcomes {
				fields := logrus.Fields{"article": comments[i].ArticleId, "text": mail.ShortText(comments[i].Content), "status": o.Status, "id": o.CommentId, "source": o.Result.Source}
				if o.Result.RemoteError != nil {
					fields["classifiererror"] = o.Result.RemoteError
				}
				logger.WithFields(fields).Info("Comment submitted")
			}
			return nil
		})
	},
}

var evaluateCmd = &cli.Command{
	Name:      "evaluate",
	Usage:     "print the verdict for a text without storing anything",
	ArgsUsage: "TEXT",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "author",
			Usage: "author name passed to the classifier",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return fmt.Errorf("expected exactly one TEXT argument")
		}

		conf, err := loadConfig(cctx)
		if err != nil {
			return err
		}

		gate, err := newGate(conf)
		if err != nil {
			return err
		}

		metadata := map[string]string{}
		if author := cctx.String("author"); len(author) > 0 {
			metadata[domain.MetadataAuthorName] = author
		}
		result := gate.Evaluate(cctx.Context, cctx.Args().First(), metadata)

		return printJSON(cctx.App.Writer, verdictJSON(result))
	},
}

var reviewCmd = &cli.Command{
	Name:  "review",
	Usage: "list stored comments, newest first",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "flagged",
			Usage: "only list comments flagged as spam or toxic",
		},
		&cli.Int64Flag{
			Name:  "article",
			Usage: "only list the published comments of this article",
		},
	},
	Action: func(cctx *cli.Context) error {
		return withSubmitter(cctx, func(submitter *submission.Submitter) error {
			var comments []*domain.SavedComment
			var err error
			if cctx.IsSet("article") {
				comments, err = submitter.VisibleComments(cctx.Int64("article"))
			} else {
				comments, err = submitter.ReviewQueue(cctx.Bool("flagged"))
			}
			if err != nil {
				return err
			}

			return printJSON(cctx.App.Writer, comments)
		})
	},
}

func visibilityCmd(name, usage string, action func(*submission.Submitter, int64) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "ID",
		Action: func(cctx *cli.Context) error {
			id, err := strconv.ParseInt(cctx.Args().First(), 10, 64)
			if err != nil || id < 1 {
				return fmt.Errorf("expected a comment id as argument")
			}

			return withSubmitter(cctx, func(submitter *submission.Submitter) error {
				err := action(submitter, id)
				if err != nil {
					return err
				}
				log.Logger(log.LOG_MAIN).WithFields(logrus.Fields{"id": id, "action": name}).Info("Comment updated")
				return nil
			})
		},
	}
}

func loadConfig(cctx *cli.Context) (*config.Config, error) {
	conf, err := config.ReadConfig(cctx.String("config"))
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	if cctx.IsSet("metrics-listen") {
		conf.MetricsListen = cctx.String("metrics-listen")
	}
	if len(conf.MetricsListen) > 0 {
		serveMetrics(conf.MetricsListen)
	}

	return conf, nil
}

func newGate(conf *config.Config) (*moderation.Gate, error) {
	logger := log.Logger(log.LOG_MAIN)

	var classifier domain.Classifier
	if len(conf.SpamassassinHost) > 0 {
		sa := spamassassin.NewSpamassassin(conf.SpamassassinHost, conf.SpamassassinThreshold)
		ctx, cancel := context.WithTimeout(context.Background(), conf.ModerationTimeout.Duration)
		defer cancel()
		if err := sa.Ping(ctx); err != nil {
			logger.WithField("error", err).Warn("SpamAssassin is not reachable, comments will be checked by the keyword heuristic until it is")
		}
		classifier = sa
	} else {
		classifier = remote.NewRemote(conf.ModerationServiceUrl, conf.ModerationTimeout.Duration)
	}

	gate, err := moderation.NewGate(
		classifier,
		keyword.NewHeuristic(conf.SpamKeywords, conf.ToxicKeywords),
		moderation.Timeout(conf.ModerationTimeout.Duration),
	)
	if err != nil {
		return nil, fmt.Errorf("could not start moderation gate: %w", err)
	}

	return gate, nil
}

func withSubmitter(cctx *cli.Context, f func(submitter *submission.Submitter) error) error {
	logger := log.Logger(log.LOG_MAIN)

	conf, err := loadConfig(cctx)
	if err != nil {
		return err
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer func() {
		if err := p.Close(); err != nil {
			logger.WithField("error", err).Error("Could not close database")
		}
	}()

	gate, err := newGate(conf)
	if err != nil {
		return err
	}

	configs := []submission.ConfigFunc{
		submission.IpHashSalt(conf.IpHashSalt),
		submission.DefaultAuthorName(conf.DefaultAuthor),
	}
	if conf.DryRun {
		logger.Warn("Dry-run, nothing will be written to the database")
		configs = append(configs, submission.DryRun())
	}

	submitter, err := submission.NewSubmitter(p, gate, configs...)
	if err != nil {
		return fmt.Errorf("could not start submitter: %w", err)
	}

	return f(submitter)
}

func readComments(input string) ([]*domain.NewComment, error) {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("could not open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	return decodeComments(r)
}

func decodeComments(r io.Reader) ([]*domain.NewComment, error) {
	comments := []*domain.NewComment{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		comment := &domain.NewComment{}
		err := json.Unmarshal(scanner.Bytes(), comment)
		if err != nil {
			return nil, fmt.Errorf("could not parse comment on line %d: %w", line, err)
		}
		comments = append(comments, comment)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read comments: %w", err)
	}

	return comments, nil
}

type verdictOutput struct {
	IsSpam      bool    `json:"is_spam"`
	IsToxic     bool    `json:"is_toxic"`
	Score       float64 `json:"score"`
	Reason      *string `json:"reason"`
	ShouldHide  bool    `json:"should_hide"`
	Source      string  `json:"source"`
	RemoteError string  `json:"remote_error,omitempty"`
}

func verdictJSON(result *domain.ModerationResult) *verdictOutput {
	out := &verdictOutput{
		IsSpam:     result.Verdict.IsSpam,
		IsToxic:    result.Verdict.IsToxic,
		Score:      result.Verdict.Score,
		Reason:     result.Verdict.Reason,
		ShouldHide: result.Verdict.ShouldHide(),
		Source:     string(result.Source),
	}
	if result.RemoteError != nil {
		out.RemoteError = result.RemoteError.Error()
	}
	return out
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func serveMetrics(listen string) {
	logger := log.Logger(log.LOG_MAIN)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithField("listen", listen).Info("Serving metrics")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithField("error", err).Error("Metrics server failed")
		}
	}()
}
