package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	png, err := svc.GenerateTrackingQR(orderID, "SF-482913")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic number
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestQRCodeService_ParseTrackingQR(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		OrderID:     orderID.String(),
		OrderNumber: "SF-482913",
		Type:        "tracking",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseTrackingQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParseTrackingQR_Invalid(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseTrackingQR("not json")
	require.Error(t, err)

	payload, err := json.Marshal(QRCodeData{
		OrderID: uuid.New().String(),
		Type:    "promotion",
	})
	require.NoError(t, err)

	_, err = svc.ParseTrackingQR(string(payload))
	require.Error(t, err)

	payload, err = json.Marshal(QRCodeData{
		OrderID: "not-a-uuid",
		Type:    "tracking",
	})
	require.NoError(t, err)

	_, err = svc.ParseTrackingQR(string(payload))
	require.Error(t, err)
}

func TestNewQRCodeService_ErrorCorrectionLevels(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"L", "M", "Q", "H", "bogus"} {
		svc := NewQRCodeService(128, level)

		png, err := svc.GenerateTrackingQR(uuid.New(), "SF-100000")
		require.NoError(t, err, "level %s", level)
		assert.NotEmpty(t, png)
	}
}
