package get_services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InteriorStudio/internal/service/catalog"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/catalog/models"
	"github.com/m04kA/SMC-InteriorStudio/pkg/logger"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		status   int
		category string
		titles   []string
	}{
		{
			name:     "all services",
			query:    "",
			status:   http.StatusOK,
			category: "all",
			titles:   []string{"Pop Installation", "Console Design", "Light Installation", "3D Wall Panels", "Interior Design", "Maintenance"},
		},
		{name: "explicit all", query: "?category=all", status: http.StatusOK, category: "all", titles: []string{"Pop Installation", "Console Design", "Light Installation", "3D Wall Panels", "Interior Design", "Maintenance"}},
		{name: "decoration", query: "?category=decoration", status: http.StatusOK, category: "decoration", titles: []string{"Interior Design"}},
		{name: "maintenance", query: "?category=maintenance", status: http.StatusOK, category: "maintenance", titles: []string{"Maintenance"}},
		{name: "gallery only category", query: "?category=commercial", status: http.StatusBadRequest},
	}

	h := NewHandler(catalog.NewService(logger.Nop()), logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services"+tt.query, nil))

			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				assert.JSONEq(t, `{"error":"unknown service category"}`, rec.Body.String())
				return
			}

			var resp models.ServicesResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			titles := make([]string, len(resp.Services))
			for i, s := range resp.Services {
				titles[i] = s.Title
			}
			assert.Equal(t, tt.category, resp.Category)
			assert.Equal(t, tt.titles, titles)
			assert.Len(t, resp.Process, 6)
		})
	}
}
