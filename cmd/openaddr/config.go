// Config loading for the openaddr CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/homier/openaddr"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "openaddr"
	configFileType = "yaml"
	envPrefix      = "OPENADDR"

	cfgKeyProbing        = "probing"
	cfgKeySizing         = "sizing"
	cfgKeyGrow           = "grow"
	cfgKeyShrink         = "shrink"
	cfgKeyTombstoneRatio = "tombstone_ratio"
	cfgKeyMinCapacity    = "min_capacity"
	cfgKeyMaxCapacity    = "max_capacity"

	sizingPrime      = "prime"
	sizingPowerOfTwo = "power-of-two"
)

var flagKeys = map[string]string{
	flagProbing:        cfgKeyProbing,
	flagSizing:         cfgKeySizing,
	flagGrow:           cfgKeyGrow,
	flagShrink:         cfgKeyShrink,
	flagTombstoneRatio: cfgKeyTombstoneRatio,
	flagMinCapacity:    cfgKeyMinCapacity,
	flagMaxCapacity:    cfgKeyMaxCapacity,
}

// loadConfig layers table settings: flags over OPENADDR_* env vars over the
// config file over defaults. A .env file in the working directory is loaded
// into the environment first. Without an explicit path a missing
// openaddr.yaml is not an error.
func loadConfig(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	} else {
		log.Println("loaded environment variables from .env")
	}

	v := viper.New()
	v.SetDefault(cfgKeyProbing, openaddr.Linear.String())
	v.SetDefault(cfgKeySizing, sizingPrime)
	v.SetDefault(cfgKeyGrow, openaddr.DefaultGrowLoadFactor)
	v.SetDefault(cfgKeyShrink, openaddr.DefaultShrinkLoadFactor)
	v.SetDefault(cfgKeyTombstoneRatio, openaddr.DefaultTombstoneRatio)
	v.SetDefault(cfgKeyMinCapacity, 0)
	v.SetDefault(cfgKeyMaxCapacity, 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := lookupFlag(flags, name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	log.Printf("using config file %s", v.ConfigFileUsed())

	return v, nil
}

// tableSettings turns the loaded keys into a table configuration. Range
// checks on the factors are left to openaddr.New.
func tableSettings(v *viper.Viper) (openaddr.Config, openaddr.Sizing, error) {
	probing, err := openaddr.ParseProbeMethod(v.GetString(cfgKeyProbing))
	if err != nil {
		return openaddr.Config{}, nil, err
	}

	var sizing openaddr.Sizing
	switch s := strings.ToLower(v.GetString(cfgKeySizing)); s {
	case sizingPrime, "":
		sizing = openaddr.PrimeTiers()
	case sizingPowerOfTwo, "pow2":
		sizing = openaddr.PowerOfTwoTiers()
	default:
		return openaddr.Config{}, nil, fmt.Errorf("%w: unknown sizing %q", openaddr.ErrInvalidArgument, s)
	}

	cfg := openaddr.Config{
		MinCapacity:      v.GetInt(cfgKeyMinCapacity),
		MaxCapacity:      v.GetInt(cfgKeyMaxCapacity),
		GrowLoadFactor:   v.GetFloat64(cfgKeyGrow),
		ShrinkLoadFactor: v.GetFloat64(cfgKeyShrink),
		TombstoneRatio:   v.GetFloat64(cfgKeyTombstoneRatio),
		Probing:          probing,
	}

	return cfg, sizing, nil
}
