// This file is part of PV8.
//
// PV8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PV8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PV8.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the pflag package. It provides a
// convenient method of handling program modes (and sub-modes) and allows
// different flags for each mode.
//
// Whereas, with pflag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of arguments
// and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Modes are specified with AddSubModes() before calling Parse(). The first
// argument that is not a flag is compared with the list of sub-modes. If it
// matches, the mode is added to the mode path and the argument is consumed.
// If it does not match then the first sub-mode is used as the default.
//
//	md.NewMode()
//	md.AddSubModes("RENDER", "FRAME")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		output := md.AddString("output", "o", "", "output file")
//		_, _ = md.Parse()
//	}
//
// Flags are not interspersed with arguments. Parsing of flags stops at the
// first argument, which means the flags for a sub-mode follow the name of the
// sub-mode on the command line.
package modalflag
