package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edusight/dropsight-backend/internal/report"
)

func TestPDFRendererMissingFont(t *testing.T) {
	r := NewPDFRenderer("testdata/does-not-exist.ttf")

	_, err := r.Render(nil, report.Summary{}, time.Now())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load report font")
}
