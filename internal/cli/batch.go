// opticalc - a library for ophthalmic lens calculations
// Copyright (C) 2026  The opticalc contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lenslab/opticalc"
)

// BatchJob is one prescription conversion in a batch file.
type BatchJob struct {
	Name     string  `yaml:"name,omitempty"`
	Sphere   float64 `yaml:"sphere"`
	Cylinder float64 `yaml:"cylinder"`
	Axis     float64 `yaml:"axis"`
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
}

// BatchFile is the YAML schema accepted by the batch command.
type BatchFile struct {
	Jobs []BatchJob `yaml:"jobs"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Convert a batch of prescriptions from a YAML file",
		Long: `Run a YAML file of prescription conversions through the index
conversion.  The file holds a list of jobs:

	jobs:
	  - name: left
	    sphere: -2.00
	    cylinder: -1.00
	    axis: 180
	    from: crown
	    to: polycarbonate

"from" and "to" are refractive indices, numeric or by material name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], cmd)
		},
	}
}

func runBatch(path string, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if len(file.Jobs) == 0 {
		return fmt.Errorf("%s: no jobs", path)
	}

	w := cmd.OutOrStdout()
	for i, job := range file.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("job %d", i+1)
		}

		from, err := parseIndex(job.From)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		to, err := parseIndex(job.To)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		lens := opticalc.SpheroCyl{
			Sphere:   job.Sphere,
			Cylinder: job.Cylinder,
			Axis:     job.Axis,
		}
		out, err := opticalc.ConvertRx(lens, from, to)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		fmt.Fprintf(w, "%s: %s @ %g -> %s @ %g\n",
			name, formatLens(lens), from, formatLens(out), to)
	}
	return nil
}
