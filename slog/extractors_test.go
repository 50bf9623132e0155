package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pageprofile"
	"github.com/fwojciec/pageprofile/mock"
	ppslog "github.com/fwojciec/pageprofile/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProfiler_Profile(t *testing.T) {
	t.Parallel()

	t.Run("logs found fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		email := "hello@acme.com"
		inner := &mock.Profiler{
			ProfileFn: func(input *pageprofile.ProfileInput) (*pageprofile.PageProfile, error) {
				return &pageprofile.PageProfile{
					Name:   "Acme",
					Email:  &email,
					Fonts:  []string{"Arial", "Georgia"},
					Colors: []string{},
				}, nil
			},
		}

		profile, err := ppslog.NewLoggingProfiler(inner, logger).Profile(&pageprofile.ProfileInput{HTML: "<html></html>"})

		require.NoError(t, err)
		assert.Equal(t, "Acme", profile.Name)
		out := buf.String()
		assert.Contains(t, out, "msg=profile")
		assert.Contains(t, out, "bytes=13")
		assert.Contains(t, out, "name=Acme")
		assert.Contains(t, out, "email=true")
		assert.Contains(t, out, "phone=false")
		assert.Contains(t, out, "fonts=2")
	})

	t.Run("logs error without profile fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Profiler{
			ProfileFn: func(input *pageprofile.ProfileInput) (*pageprofile.PageProfile, error) {
				return nil, pageprofile.Errorf(pageprofile.EINVALID, "malformed extracted entities")
			},
		}

		_, err := ppslog.NewLoggingProfiler(inner, logger).Profile(&pageprofile.ProfileInput{})

		require.Error(t, err)
		out := buf.String()
		assert.Contains(t, out, "malformed extracted entities")
		assert.NotContains(t, out, "fonts=")
	})
}

func TestLoggingBlockDetector_DetectBlocks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.BlockDetector{
		DetectBlocksFn: func(html string) ([]pageprofile.ContentBlock, error) {
			return []pageprofile.ContentBlock{{Title: "Plumbing"}, {Title: "Roofing"}}, nil
		},
	}

	blocks, err := ppslog.NewLoggingBlockDetector(inner, logger).DetectBlocks("<html></html>")

	require.NoError(t, err)
	assert.Len(t, blocks, 2)
	assert.Contains(t, buf.String(), `msg="detect blocks"`)
	assert.Contains(t, buf.String(), "blocks=2")
}

func TestLoggingCaptionExtractor_Captions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.CaptionExtractor{
		CaptionsFn: func(html string) ([]pageprofile.ImageCaption, error) {
			return nil, errors.New("parse failure")
		},
	}

	_, err := ppslog.NewLoggingCaptionExtractor(inner, logger).Captions("<html>")

	require.Error(t, err)
	assert.Contains(t, buf.String(), "msg=captions")
	assert.Contains(t, buf.String(), "captions=0")
	assert.Contains(t, buf.String(), `err="parse failure"`)
}

func TestLogFunc(t *testing.T) {
	t.Parallel()

	t.Run("writes debug records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		ppslog.LogFunc(logger)("repeating prefix %q", "Plumbing")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), `repeating prefix \"Plumbing\"`)
	})

	t.Run("stays silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		ppslog.LogFunc(logger)("repeating prefix %q", "Plumbing")

		assert.Empty(t, buf.String())
	})
}
