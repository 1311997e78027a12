// Command deep1010 plans the preparation pipeline of one dataset: it maps the
// configured channel list onto the Deep 10-10 scheme, reports what landed
// where, and prints the metadata the model will see.
//
// Settings come from the environment or a .env file (see package config):
//
//	DEEP1010_CHANNELS="Fp1,Fp2,Cz,VEOG:eog,A1:ref" \
//	DEEP1010_SFREQ=256 DEEP1010_LENGTH=512 DEEP1010_TARGET_LENGTH=256 \
//	DEEP1010_VERIFY=true deep1010
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/katalvlaran/deep1010/channels"
	"github.com/katalvlaran/deep1010/config"
	"github.com/katalvlaran/deep1010/matrix"
	"github.com/katalvlaran/deep1010/rng"
	"github.com/katalvlaran/deep1010/transforms"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	log.Printf("channels=%d sfreq=%g length=%d seed=%d", len(cfg.Channels), cfg.SFreq, cfg.SequenceLength, cfg.Seed)

	chain, mapping, err := buildChain(cfg)
	if err != nil {
		log.Fatalf("pipeline error: %v", err)
	}
	report(mapping.Mapping())

	info := cfg.Dataset()
	md, err := chain.ResultingMetadata(info.Metadata(0))
	if err != nil {
		log.Fatalf("metadata error: %v", err)
	}
	log.Printf("%s", chain)
	log.Printf("output: %d channels × %d samples @ %g Hz", len(md.Channels), md.SequenceLength, md.SFreq)

	if cfg.Verify {
		if err = verify(cfg, chain, md); err != nil {
			log.Fatalf("verify error: %v", err)
		}
		log.Println("verify: output shape matches metadata")
	}
}

// buildChain maps the dataset, then resamples when a target length is set.
func buildChain(cfg *config.Config) (*transforms.Chain, *transforms.MappingDeep1010, error) {
	mapping, err := transforms.NewMappingDeep1010(cfg.Dataset(),
		transforms.WithMapOptions(channels.WithUnmappedPolicy(cfg.Unmapped)))
	if err != nil {
		return nil, nil, err
	}
	ts := []transforms.Transform{mapping}
	if cfg.TargetLength > 0 && cfg.TargetLength != cfg.SequenceLength {
		sfreq := cfg.SFreq * float64(cfg.TargetLength) / float64(cfg.SequenceLength)
		resample, err := transforms.NewTemporalInterpolation(cfg.TargetLength,
			transforms.WithInterpolation(cfg.Interpolation), transforms.WithSFreq(sfreq))
		if err != nil {
			return nil, nil, err
		}
		ts = append(ts, resample)
	}
	chain, err := transforms.NewChain(0, ts...)
	if err != nil {
		return nil, nil, err
	}

	return chain, mapping, nil
}

func report(m *channels.Mapping) {
	s := m.Scheme()
	var placed []string
	for i, ch := range m.Sources() {
		j, ok := m.SlotOf(i)
		if !ok {
			continue
		}
		sl, _ := s.Slot(j)
		placed = append(placed, ch.Name+"→"+sl.Name)
	}
	log.Printf("mapped: %s", strings.Join(placed, " "))
	if un := m.Unmapped(); len(un) > 0 {
		log.Printf("unmapped: %s", strings.Join(un, " "))
	}
}

// verify runs the chain on a random trial and compares shapes.
func verify(cfg *config.Config, chain *transforms.Chain, md transforms.Metadata) error {
	r := rng.New(cfg.Seed)
	data := make([]float64, len(cfg.Channels)*cfg.SequenceLength)
	for i := range data {
		data[i] = 2*r.Float64() - 1
	}
	x, err := matrix.NewDenseFrom(len(cfg.Channels), cfg.SequenceLength, data)
	if err != nil {
		return err
	}
	y, err := chain.Apply(x, r)
	if err != nil {
		return err
	}
	if y.Rows() != len(md.Channels) || y.Cols() != md.SequenceLength {
		return fmt.Errorf("got %d×%d, metadata says %d×%d: %w",
			y.Rows(), y.Cols(), len(md.Channels), md.SequenceLength, transforms.ErrShapeMismatch)
	}

	return nil
}
