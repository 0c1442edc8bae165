package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type config struct {
	RPCURL     string
	Commitment rpc.CommitmentType
	Timeout    time.Duration
	LogLevel   logrus.Level
}

// loadConfig reads .env files when present, then the environment.
func loadConfig(envFiles ...string) (*config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("load %s: %w", f, err)
			}
		}
	}

	cfg := &config{
		RPCURL:     getenv("RPC_URL", rpc.MainNetBeta_RPC),
		Commitment: rpc.CommitmentType(getenv("COMMITMENT", string(rpc.CommitmentFinalized))),
		Timeout:    5 * time.Second,
		LogLevel:   logrus.InfoLevel,
	}
	switch cfg.Commitment {
	case rpc.CommitmentFinalized, rpc.CommitmentConfirmed, rpc.CommitmentProcessed:
	default:
		return nil, fmt.Errorf("COMMITMENT: unknown commitment %q", cfg.Commitment)
	}
	if v := os.Getenv("RPC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("RPC_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
