// Package tables parses the plain-text tables that accompany an observation.
//
// Tables are whitespace-separated streams of non-negative integers. Entries
// outside the valid range of the observation are ignored; anything that is
// not an integer is a format violation.
package tables

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/arloliu/astrodata/errs"
)

// ZappedChannels flags the channels excluded from processing.
type ZappedChannels struct {
	// Mask has one entry per channel, true when the channel is zapped.
	Mask []bool
	// Count is the number of distinct zapped channels.
	Count int
}

// IsZapped reports whether channel is zapped. Channels outside the mask are not.
func (z ZappedChannels) IsZapped(channel int) bool {
	return channel >= 0 && channel < len(z.Mask) && z.Mask[channel]
}

// ReadZappedChannels reads a list of channel indices from r. Indices at or
// above nrChannels are ignored, repeated indices are counted once.
func ReadZappedChannels(r io.Reader, nrChannels int) (ZappedChannels, error) {
	z := ZappedChannels{Mask: make([]bool, nrChannels)}

	err := scanIntegers(r, func(channel int) {
		if channel < nrChannels && !z.Mask[channel] {
			z.Mask[channel] = true
			z.Count++
		}
	})
	if err != nil {
		return ZappedChannels{}, err
	}

	return z, nil
}

// ReadZappedChannelsFile reads the zapped channels table at path.
func ReadZappedChannelsFile(path string, nrChannels int) (ZappedChannels, error) {
	var z ZappedChannels

	err := withFile(path, func(f io.Reader) error {
		var err error
		z, err = ReadZappedChannels(f, nrChannels)

		return err
	})

	return z, err
}

// ReadIntegrationSteps reads a list of integration steps from r and returns
// the distinct steps below nrSamplesPerBatch in increasing order.
func ReadIntegrationSteps(r io.Reader, nrSamplesPerBatch int) ([]int, error) {
	var steps []int

	err := scanIntegers(r, func(step int) {
		if step < nrSamplesPerBatch {
			steps = append(steps, step)
		}
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(steps)

	return slices.Compact(steps), nil
}

// ReadIntegrationStepsFile reads the integration steps table at path.
func ReadIntegrationStepsFile(path string, nrSamplesPerBatch int) ([]int, error) {
	var steps []int

	err := withFile(path, func(f io.Reader) error {
		var err error
		steps, err = ReadIntegrationSteps(f, nrSamplesPerBatch)

		return err
	})

	return steps, err
}

func scanIntegers(r io.Reader, fn func(int)) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for entry := 1; sc.Scan(); entry++ {
		v, err := strconv.ParseUint(sc.Text(), 10, 31)
		if err != nil {
			return fmt.Errorf("%w: entry %d %q", errs.ErrInvalidTable, entry, sc.Text())
		}
		fn(int(v))
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrReadFile, err)
	}

	return nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrOpenFile, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
