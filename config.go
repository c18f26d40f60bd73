package main

import (
	"fmt"
	"time"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"cloud-gaming-rig/internal/callerip"
	"cloud-gaming-rig/internal/userdata"
)

const configNamespace = "gaming-rig"

// rigConfig is the stack configuration surface. Everything except the AWS
// region has a default.
type rigConfig struct {
	region              string
	namePrefix          string
	instanceType        string
	customAmi           string
	allowedZoneSuffixes []string
	rootVolumeSizeGb    int
	fulfillmentTimeout  time.Duration
	callerIPEndpoint    string
	skipInstall         bool
	flags               userdata.Flags
}

// loadConfig reads the stack configuration and applies defaults. Invalid
// values fail the run before any resource is declared.
func loadConfig(ctx *pulumi.Context) (*rigConfig, error) {
	awsConf := config.New(ctx, "aws")
	conf := config.New(ctx, configNamespace)

	cfg := &rigConfig{
		region:           awsConf.Require("region"),
		namePrefix:       getString(conf, "resourceNamePrefix", "gaming-rig"),
		instanceType:     getString(conf, "instanceType", "g4dn.xlarge"),
		customAmi:        conf.Get("customAmi"),
		rootVolumeSizeGb: getInt(conf, "rootVolumeSizeGb", 120),
		callerIPEndpoint: getString(conf, "callerIpEndpoint", callerip.DefaultEndpoint),
		skipInstall:      getBool(conf, "skipInstall", false),
		flags: userdata.Flags{
			InstallGraphicsDriver:    getBool(conf, "installGraphicsDriver", true),
			InstallSteam:             getBool(conf, "installSteam", false),
			InstallGogGalaxy:         getBool(conf, "installGogGalaxy", false),
			InstallOrigin:            getBool(conf, "installOrigin", false),
			InstallEpicGamesLauncher: getBool(conf, "installEpicGamesLauncher", false),
			InstallUplay:             getBool(conf, "installUplay", false),
			InstallSunshine:          getBool(conf, "installSunshine", false),
			EnableAutoLogin:          getBool(conf, "enableAutoLogin", false),
		},
	}

	if err := conf.GetObject("allowedZoneSuffixes", &cfg.allowedZoneSuffixes); err != nil {
		return nil, fmt.Errorf("allowedZoneSuffixes must be a JSON array of zone suffixes: %w", err)
	}

	if cfg.rootVolumeSizeGb <= 0 {
		return nil, fmt.Errorf("rootVolumeSizeGb must be positive, got %d", cfg.rootVolumeSizeGb)
	}

	timeout, err := time.ParseDuration(getString(conf, "spotFulfillmentTimeout", "10m"))
	if err != nil {
		return nil, fmt.Errorf("spotFulfillmentTimeout is not a duration: %w", err)
	}
	cfg.fulfillmentTimeout = timeout

	return cfg, nil
}

func getString(conf *config.Config, key, fallback string) string {
	if v := conf.Get(key); v != "" {
		return v
	}
	return fallback
}

func getInt(conf *config.Config, key string, fallback int) int {
	v, err := conf.TryInt(key)
	if err != nil {
		return fallback
	}
	return v
}

func getBool(conf *config.Config, key string, fallback bool) bool {
	v, err := conf.TryBool(key)
	if err != nil {
		return fallback
	}
	return v
}
