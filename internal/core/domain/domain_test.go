package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinpoint/internal/core/domain"
)

func TestReport_Count(t *testing.T) {
	r := domain.Report{Outcomes: []domain.FileOutcome{
		{File: domain.NewFileID("/a.js"), Status: domain.StatusCached},
		{File: domain.NewFileID("/b.js"), Status: domain.StatusInstrumented},
		{File: domain.NewFileID("/c.js"), Status: domain.StatusInstrumented},
		{File: domain.NewFileID("/d.js"), Status: domain.StatusFailed},
	}}

	assert.Equal(t, 1, r.Count(domain.StatusCached))
	assert.Equal(t, 2, r.Count(domain.StatusInstrumented))
	assert.Equal(t, 1, r.Count(domain.StatusFailed))
	assert.Equal(t, []domain.FileID{domain.NewFileID("/b.js"), domain.NewFileID("/c.js")}, r.Changed())
}

func TestReport_Empty(t *testing.T) {
	var r domain.Report

	assert.Zero(t, r.Count(domain.StatusCached))
	assert.Empty(t, r.Changed())
}

func TestDefaultCachePath(t *testing.T) {
	assert.Equal(t, ".pinpoint/cache", domain.DefaultCachePath())
}
