package cmd

import (
	"fmt"
	"strings"

	"tripctl/internal/config"

	"github.com/chzyer/readline"
)

// resolveCredentials determines the username and password for a sign-in.
// Precedence: command-line flags, then environment/config, then interactive
// prompts for whatever is still missing.
func resolveCredentials(cfg config.Config, username, password string) (string, string, error) {
	if username == "" {
		username = cfg.Auth.Username
	}
	if password == "" {
		password = cfg.Auth.Password
	}

	if username == "" {
		var err error
		username, err = promptUsername()
		if err != nil {
			return "", "", err
		}
	}
	if password == "" {
		var err error
		password, err = promptPassword()
		if err != nil {
			return "", "", err
		}
	}

	if username == "" {
		return "", "", fmt.Errorf("username must not be empty")
	}
	if password == "" {
		return "", "", fmt.Errorf("password must not be empty")
	}

	return username, password, nil
}

// promptUsername reads the username interactively.
func promptUsername() (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "Username: ",
	})
	if err != nil {
		return "", fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return "", fmt.Errorf("failed to read username: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads the password interactively with the input masked.
func promptPassword() (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:     "Password: ",
		EnableMask: true,
		MaskRune:   '*',
	})
	if err != nil {
		return "", fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return line, nil
}
