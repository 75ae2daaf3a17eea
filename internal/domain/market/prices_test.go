package market

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

const testCSV = `State,District,Market,Commodity,Arrival_Date,Min_x0020_Price,Max_x0020_Price,Modal_x0020_Price
Kerala,Ernakulam,Aluva,Tomato,12/05/2025,2400,2800,2600
Kerala,Thrissur,Thrissur,Rice,12/05/2025,3100,3500,3300
Maharashtra,Pune,Pune,Onion,12/05/2025,1200,1600,1400
Maharashtra,Nashik,Lasalgaon,Onion Red,12/05/2025,1100,1500,1300
Tamil Nadu,Coimbatore,Coimbatore,Tomato Hybrid,12/05/2025,2000,2500,2300
`

func writeTestCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cropprice.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	return path
}

func testService(t *testing.T) *Service {
	t.Helper()
	logger, err := logging.New(logging.Config{Level: "error"})
	require.NoError(t, err)
	return NewService(NewCSVProvider(writeTestCSV(t)), logger)
}

func TestSearch_SubstringAndCaseInsensitive(t *testing.T) {
	svc := testService(t)

	// "onion" matches both "Onion" and "Onion Red"; "MAHA" matches state.
	records, err := svc.Search(context.Background(), "ONION", "maha")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Onion", records[0].Commodity)
	assert.Equal(t, "Onion Red", records[1].Commodity)
	assert.Equal(t, 1200.0, records[0].MinPrice)
	assert.Equal(t, 1400.0, records[0].ModalPrice)
}

func TestSearch_RequiresBothMatches(t *testing.T) {
	svc := testService(t)

	// Tomato exists, but not in Kerala AND Maharashtra at once.
	records, err := svc.Search(context.Background(), "tomato", "kerala")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Aluva", records[0].Market)
}

func TestSearch_NotFound(t *testing.T) {
	svc := testService(t)

	_, err := svc.Search(context.Background(), "onion", "kerala")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
	assert.Equal(t, "No data found for this crop and state", errors.UserMessage(err))
}

func TestSearch_MissingInput(t *testing.T) {
	svc := testService(t)

	cases := [][2]string{{"", "kerala"}, {"onion", ""}, {"  ", "  "}}
	for _, tc := range cases {
		_, err := svc.Search(context.Background(), tc[0], tc[1])
		require.Error(t, err)
		assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
		assert.Equal(t, "Crop name and state name are required", errors.UserMessage(err))
	}
}

func TestSearch_TableOrderPreserved(t *testing.T) {
	svc := testService(t)

	records, err := svc.Search(context.Background(), "tomato", "a")
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Kerala row precedes the Tamil Nadu row in the file.
	assert.Equal(t, "Kerala", records[0].State)
	assert.Equal(t, "Tamil Nadu", records[1].State)
}

func TestLoad_MissingFile(t *testing.T) {
	logger, err := logging.New(logging.Config{Level: "error"})
	require.NoError(t, err)
	svc := NewService(NewCSVProvider("/nonexistent/cropprice.csv"), logger)

	_, err = svc.Search(context.Background(), "onion", "kerala")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindStorage))
}
