package transforms_test

import (
	"fmt"

	"github.com/katalvlaran/deep1010/channels"
	"github.com/katalvlaran/deep1010/transforms"
)

func ExampleChain_ResultingMetadata() {
	info := transforms.DatasetInfo{
		Channels: channels.Layout{
			{Name: "Fp1", Type: channels.EEG},
			{Name: "Fp2", Type: channels.EEG},
			{Name: "VEOG", Type: channels.EOG},
		},
		SFreq:          256,
		SequenceLength: 512,
	}
	mapping, err := transforms.NewMappingDeep1010(info)
	if err != nil {
		fmt.Println(err)
		return
	}
	resample, err := transforms.NewTemporalInterpolation(256, transforms.WithSFreq(128))
	if err != nil {
		fmt.Println(err)
		return
	}
	chain, err := transforms.NewChain(0, mapping, transforms.NewZScore(), resample)
	if err != nil {
		fmt.Println(err)
		return
	}
	md, err := chain.ResultingMetadata(info.Metadata(0))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(md.Channels), md.SequenceLength, md.SFreq)
	// Output: 90 256 128
}
