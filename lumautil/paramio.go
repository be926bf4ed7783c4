/*
Copyright © 2026 the LUMA authors.
This file is part of LUMA.

LUMA is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

LUMA is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with LUMA.  If not, see <http://www.gnu.org/licenses/>.
*/

package lumautil

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cropmodel/luma"
)

// WriteParams writes a parameter snapshot as TOML. Snapshots pin the
// exact coefficients of a run so results stay reproducible across
// recalibrations of the defaults.
func WriteParams(filename string, p luma.Params) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("lumautil: creating parameter snapshot: %v", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("lumautil: encoding parameter snapshot: %v", err)
	}
	return nil
}

// ReadParams loads a parameter snapshot written by WriteParams. Keys
// absent from the file keep their calibrated defaults. The result is
// validated before it is returned.
func ReadParams(filename string) (luma.Params, error) {
	p := luma.DefaultParams()
	if _, err := toml.DecodeFile(filename, &p); err != nil {
		return p, fmt.Errorf("lumautil: reading parameter snapshot %s: %v", filename, err)
	}
	if err := p.Check(); err != nil {
		return p, fmt.Errorf("lumautil: parameter snapshot %s: %v", filename, err)
	}
	return p, nil
}
