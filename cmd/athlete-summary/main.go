package main

import (
	"context"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/kwoodhouse93/strava-client/strava"
)

type Config struct {
	AccessToken    string        `required:"true" envconfig:"STRAVA_ACCESS_TOKEN"`
	RequestTimeout time.Duration `default:"15s" envconfig:"REQUEST_TIMEOUT"`
	PerPage        int           `default:"5" envconfig:"PER_PAGE"`
}

func main() {
	config := Config{}
	err := envconfig.Process("", &config)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	transport := strava.NewRestyTransport(config.RequestTimeout)
	client, err := strava.NewClient(
		strava.StaticToken(config.AccessToken),
		transport,
		strava.WithVerbosity(strava.VerbosityEnhanced),
		strava.WithLogger(sugar),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	res, err := client.GetAthlete(ctx, strava.GetAthleteParams{})
	if err != nil {
		log.Fatal(err)
	}
	env := res.(*strava.Envelope)
	if !env.Success {
		sugar.Fatalw("athlete request rejected", "status", env.StatusCode)
	}
	athlete, ok := env.Body.(map[string]any)
	if !ok {
		sugar.Fatalw("unexpected athlete response body")
	}
	sugar.Infow("athlete",
		"id", athlete["id"],
		"username", athlete["username"],
		"firstname", athlete["firstname"],
		"lastname", athlete["lastname"],
	)
	if limits, ok := strava.ParseRateLimits(env.Headers); ok {
		sugar.Infow("rate limits",
			"short_usage", limits.ShortTermUsage,
			"short_limit", limits.ShortTermLimit,
			"long_usage", limits.LongTermUsage,
			"long_limit", limits.LongTermLimit,
		)
	}

	if id, ok := athlete["id"].(float64); ok {
		res, err = client.GetAthleteStats(ctx, int64(id))
		if err != nil {
			log.Fatal(err)
		}
		if env := res.(*strava.Envelope); env.Success {
			sugar.Infow("stats", "body", env.Body)
		}
	}

	res, err = client.ListAthleteActivities(ctx, strava.ListAthleteActivitiesParams{
		PerPage: strava.Int(config.PerPage),
	})
	if err != nil {
		log.Fatal(err)
	}
	env = res.(*strava.Envelope)
	if activities, ok := env.Body.([]any); ok {
		for _, a := range activities {
			activity, ok := a.(map[string]any)
			if !ok {
				continue
			}
			sugar.Infow("activity",
				"id", activity["id"],
				"name", activity["name"],
				"sport_type", activity["sport_type"],
				"distance", activity["distance"],
			)
		}
	}
}
