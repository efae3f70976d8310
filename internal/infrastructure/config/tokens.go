package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Token names in the secrets file
const (
	TokenTelegram = "telegram"
	TokenCrypto   = "crypto"
)

// ReadTokenFile parses "name:value" lines. Values may contain colons; blank lines and # comments are skipped.
func ReadTokenFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open token file: %w", err)
	}
	defer f.Close()

	tokens := make(map[string]string)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("token file %s line %d: expected name:value", path, lineNo)
		}
		tokens[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	return tokens, nil
}

// applyTokenFile fills tokens not already set by the config file or environment
func applyTokenFile(config *Config) error {
	if config.Secrets.TokenFile == "" {
		return nil
	}

	tokens, err := ReadTokenFile(config.Secrets.TokenFile)
	if err != nil {
		return err
	}
	if config.Telegram.Token == "" {
		config.Telegram.Token = tokens[TokenTelegram]
	}
	if config.CryptoPay.Token == "" {
		config.CryptoPay.Token = tokens[TokenCrypto]
	}
	return nil
}
