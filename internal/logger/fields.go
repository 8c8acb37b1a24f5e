package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider is the structured log field key for the insight provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the AI model identifier.
	FieldModel = "ai_model"
	// FieldAnalysisID identifies one analysis run.
	FieldAnalysisID = "analysis_id"
	// FieldFile is the analyzed file name.
	FieldFile = "file"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields describes the insight provider and model. Empty values are dropped.
func CommonFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithCommonFields attaches the provider fields to logger.
func WithCommonFields(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, CommonFields(provider, model)...)
}

// AnalysisFields identifies one analysis run and, when known, its source file.
func AnalysisFields(analysisID, fileName string) []zap.Field {
	return StringFields(
		StringField{Key: FieldAnalysisID, Value: analysisID},
		StringField{Key: FieldFile, Value: fileName},
	)
}
