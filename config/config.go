// Package config loads the settings of the deep1010 command from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/deep1010/channels"
	"github.com/katalvlaran/deep1010/transforms"
)

// Environment variable names.
const (
	EnvChannels      = "DEEP1010_CHANNELS"
	EnvSFreq         = "DEEP1010_SFREQ"
	EnvLength        = "DEEP1010_LENGTH"
	EnvTargetLength  = "DEEP1010_TARGET_LENGTH"
	EnvSeed          = "DEEP1010_SEED"
	EnvUnmapped      = "DEEP1010_UNMAPPED"
	EnvInterpolation = "DEEP1010_INTERPOLATION"
	EnvDataMin       = "DEEP1010_DATA_MIN"
	EnvDataMax       = "DEEP1010_DATA_MAX"
	EnvVerify        = "DEEP1010_VERIFY"
)

// ErrInvalid reports a missing or malformed setting.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the dataset description and pipeline settings of one run.
type Config struct {
	Channels       channels.Layout
	SFreq          float64
	SequenceLength int
	// TargetLength is the resampled length; 0 keeps SequenceLength.
	TargetLength  int
	Seed          uint64
	Unmapped      channels.UnmappedPolicy
	Interpolation transforms.Interpolation
	DataRange     *transforms.Range
	Verify        bool
}

// Dataset returns the dataset description for the mapping transform.
func (c *Config) Dataset() transforms.DatasetInfo {
	return transforms.DatasetInfo{
		Channels:       c.Channels.Clone(),
		SFreq:          c.SFreq,
		SequenceLength: c.SequenceLength,
		DataRange:      c.DataRange,
	}
}

// Load reads a .env file (files, or ./.env by default; a missing file is not
// an error) into the process environment and parses the settings.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	return FromEnv(os.Getenv)
}

// LoadFile parses the settings from path without touching the process
// environment. Variables already set in the environment win.
func LoadFile(path string) (*Config, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return FromEnv(func(k string) string {
		if v, ok := os.LookupEnv(k); ok {
			return v
		}
		return vals[k]
	})
}

func invalid(key, val string, err error) error {
	if err != nil {
		return fmt.Errorf("%s=%q: %w: %w", key, val, ErrInvalid, err)
	}

	return fmt.Errorf("%s=%q: %w", key, val, ErrInvalid)
}

// FromEnv parses the settings through getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	var err error

	raw := getenv(EnvChannels)
	if cfg.Channels, err = channels.ParseLayout(raw); err != nil {
		return nil, invalid(EnvChannels, raw, err)
	}

	raw = getenv(EnvSFreq)
	if cfg.SFreq, err = strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil || cfg.SFreq <= 0 {
		return nil, invalid(EnvSFreq, raw, err)
	}

	raw = getenv(EnvLength)
	if cfg.SequenceLength, err = strconv.Atoi(strings.TrimSpace(raw)); err != nil || cfg.SequenceLength <= 0 {
		return nil, invalid(EnvLength, raw, err)
	}

	if raw = strings.TrimSpace(getenv(EnvTargetLength)); raw != "" {
		if cfg.TargetLength, err = strconv.Atoi(raw); err != nil || cfg.TargetLength <= 0 {
			return nil, invalid(EnvTargetLength, raw, err)
		}
	}

	if raw = strings.TrimSpace(getenv(EnvSeed)); raw != "" {
		if cfg.Seed, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return nil, invalid(EnvSeed, raw, err)
		}
	}

	raw = getenv(EnvUnmapped)
	if cfg.Unmapped, err = channels.ParseUnmappedPolicy(raw); err != nil {
		return nil, invalid(EnvUnmapped, raw, err)
	}

	if raw = getenv(EnvInterpolation); strings.TrimSpace(raw) != "" {
		if cfg.Interpolation, err = transforms.ParseInterpolation(raw); err != nil {
			return nil, invalid(EnvInterpolation, raw, err)
		}
	}

	lo, hi := strings.TrimSpace(getenv(EnvDataMin)), strings.TrimSpace(getenv(EnvDataMax))
	switch {
	case lo == "" && hi == "":
	case lo == "" || hi == "":
		return nil, invalid(EnvDataMin+"/"+EnvDataMax, lo+"/"+hi, nil)
	default:
		r := &transforms.Range{}
		if r.Min, err = strconv.ParseFloat(lo, 64); err != nil {
			return nil, invalid(EnvDataMin, lo, err)
		}
		if r.Max, err = strconv.ParseFloat(hi, 64); err != nil {
			return nil, invalid(EnvDataMax, hi, err)
		}
		if err = r.Validate(); err != nil {
			return nil, invalid(EnvDataMin+"/"+EnvDataMax, lo+"/"+hi, err)
		}
		cfg.DataRange = r
	}

	if raw = strings.TrimSpace(getenv(EnvVerify)); raw != "" {
		if cfg.Verify, err = strconv.ParseBool(raw); err != nil {
			return nil, invalid(EnvVerify, raw, err)
		}
	}

	return cfg, nil
}
