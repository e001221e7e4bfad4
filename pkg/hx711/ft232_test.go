package hx711

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/l0nax/go-spew/spew"

	"github.com/yunginnanet/gpio-hx711/pkg/ft232h"
)

var pprint = spew.ConfigState{
	Indent:           "\t",
	ContinueOnMethod: true,
	SortKeys:         true,
	SpewKeys:         true,
	HighlightValues:  true,
	HighlightHex:     true,
}

func envPin(t *testing.T, key string, def uint) uint {
	t.Helper()
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	pin, err := strconv.ParseUint(v, 0, 8)
	if err != nil {
		t.Fatalf("bad '%s' environment variable: %v\nvalue: %s", key, err, v)
	}
	return uint(pin)
}

// TestFT232HRetrieve talks to a real HX711 wired to an FT232H: DOUT and
// PD_SCK on C-bus GPIO pins, a load cell on channel A.
func TestFT232HRetrieve(t *testing.T) {
	if os.Getenv("TEST_FT232H") == "" {
		t.Skip("set 'TEST_FT232H' in environment to run this test")
	}

	dout := envPin(t, "TEST_HX711_DOUT", 0x01)
	clk := envPin(t, "TEST_HX711_CLK", 0x10)

	hx, ftdi, err := NewFT232H(dout, clk, ft232h.ByIndex(0))
	if err != nil {
		t.Fatalf("failed to open HX711 over FT232H: %v", err)
	}
	t.Logf("FT232H connected: %s", ftdi.String())

	pprint.Dump(ftdi.Info())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	code, err := hx.RetrieveBlocking(ctx)
	cancel()
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}
	t.Logf("sample: %d", code)

	if code > MaxValue || code < -MinValue {
		t.Errorf("sample out of 24-bit range: %d", code)
	}

	if err = hx.Close(); err != nil {
		t.Errorf("failed to power down HX711: %v", err)
	}
	if err = ftdi.Close(); err != nil {
		t.Errorf("failed to close FT232H: %v", err)
	}
}
