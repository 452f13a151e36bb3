// Package audio generates spoken prompt audio for pre-readers. Question
// prompts and explanations are fetched once from Google Translate TTS
// and cached on disk.
package audio

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"tinyquest/internal/models"
)

// TTSService provides text-to-speech functionality
type TTSService struct {
	audioDir string
}

const ttsRequestTimeout = 10 * time.Second

// NewTTSService creates a new TTS service
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{
		audioDir: audioDir,
	}
}

// PromptAudio converts prompt text to speech and saves it as MP3.
// Returns the cache filename (not full path) on success. Filenames are
// content-addressed, so the same prompt is only fetched once.
func (s *TTSService) PromptAudio(ctx context.Context, text string) (string, error) {
	sum := sha1.Sum([]byte(text))
	filename := fmt.Sprintf("prompt_%s.mp3", hex.EncodeToString(sum[:8]))
	fullPath := filepath.Join(s.audioDir, filename)

	// Check if file already exists
	if _, err := os.Stat(fullPath); err == nil {
		return filename, nil
	}

	// Generate audio using Google Translate TTS (free, no API key needed)
	if err := s.generateUsingGoogleTTS(ctx, text, fullPath); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// WarmLevel pre-generates audio for every prompt and explanation in a
// level, so playback starts instantly when the level opens. Returns
// prompt text mapped to cache filename.
func (s *TTSService) WarmLevel(ctx context.Context, level models.Level) (map[string]string, error) {
	results := make(map[string]string)

	for _, question := range level.Questions {
		for _, text := range []string{question.Prompt, question.Explanation} {
			if text == "" {
				continue
			}
			if _, done := results[text]; done {
				continue
			}
			filename, err := s.PromptAudio(ctx, text)
			if err != nil {
				return results, fmt.Errorf("failed to generate audio for %q: %w", text, err)
			}
			results[text] = filename
		}
	}

	return results, nil
}

// generateUsingGoogleTTS uses Google Translate's text-to-speech API
// This is a simple, free option that doesn't require API keys
func (s *TTSService) generateUsingGoogleTTS(ctx context.Context, text, outputPath string) error {
	// Google Translate TTS endpoint
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := baseURL + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent (required by Google)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: ttsRequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// DeleteAudioFile removes a cached audio file
func (s *TTSService) DeleteAudioFile(filename string) error {
	fullPath := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil // Already deleted
	}

	return os.Remove(fullPath)
}

// CachedAudioFiles returns all MP3 files in the cache directory
func (s *TTSService) CachedAudioFiles() ([]string, error) {
	files, err := os.ReadDir(s.audioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory: %w", err)
	}

	var audioFiles []string
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".mp3" {
			audioFiles = append(audioFiles, file.Name())
		}
	}

	return audioFiles, nil
}
