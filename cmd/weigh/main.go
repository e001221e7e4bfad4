package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/yunginnanet/gpio-hx711/pkg/ft232h"
	"github.com/yunginnanet/gpio-hx711/pkg/hx711"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

func flags() (ftindex int, clk uint, dout uint, mode int, count int) {
	fti := flag.Int("FT232H", 0, "FT232H Index")
	clki := flag.Uint("CLK", 0x10, "PD_SCK clock (GPIO)")
	douti := flag.Uint("DOUT", 0x01, "DOUT data (GPIO)")
	modei := flag.Int("mode", 1, "channel/gain selection as trailing pulse count (1-3)")
	counti := flag.Int("count", 10, "samples to read")
	flag.Parse()
	return *fti, *clki, *douti, *modei, *counti
}

func main() {
	ftindex, clk, dout, mode, count := flags()

	hx, ftdi, err := hx711.NewFT232H(dout, clk, ft232h.ByIndex(ftindex))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open HX711 over FT232H")
	}

	log.Info().Any("info", ftdi.Info()).
		Msgf("connected to FT232H: %s", ftdi)

	if err = hx.SetMode(context.Background(), hx711.Mode(mode)); err != nil {
		log.Fatal().Err(err).Msg("failed to program mode")
	}

	log.Info().Stringer("mode", hx.Mode()).Msg("mode programmed")

	for i := 0; i < count; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		code, rerr := hx.RetrieveBlocking(ctx)
		cancel()
		if rerr != nil {
			log.Fatal().Err(rerr).Msg("failed to read sample")
		}
		log.Info().Int32("code", code).Msg("sample")
	}

	if err = hx.Close(); err != nil {
		log.Fatal().Err(err).Msg("failed to power down HX711")
	}
	if err = ftdi.Close(); err != nil {
		log.Fatal().Err(err).Msg("failed to close FT232H")
	}

	log.Info().Msg("closed HX711")
}
