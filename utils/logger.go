package utils

import "go.uber.org/zap"

// NewLogger returns a JSON production logger, or a console logger when env is
// "development".
func NewLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
