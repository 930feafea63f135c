package service

import (
	"context"
	"fmt"

	"doc-summarizer/internal/domain"
)

type MockLogger struct {
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.messages = append(m.messages, "INFO: "+msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.messages = append(m.messages, "ERROR: "+msg+" - "+err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.messages = append(m.messages, "DEBUG: "+msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.messages = append(m.messages, fmt.Sprint(append([]interface{}{"WARN: " + msg}, args...)...))
}

type MockPDFExtractor struct {
	text  string
	err   error
	calls int
}

func (m *MockPDFExtractor) ExtractText(pdfBytes []byte) (string, error) {
	m.calls++
	return m.text, m.err
}

type MockOCREngine struct {
	text      string
	err       error
	calls     int
	languages []string
}

func (m *MockOCREngine) Recognize(imageBytes []byte, language string) (string, error) {
	m.calls++
	m.languages = append(m.languages, language)
	return m.text, m.err
}

type MockSummaryClient struct {
	summary string
	err     error
	prompts []string
}

func (m *MockSummaryClient) Summarize(ctx context.Context, prompt string) (domain.SummaryResponse, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return domain.SummaryResponse{}, m.err
	}
	return domain.SummaryResponse{SummaryText: m.summary}, nil
}
