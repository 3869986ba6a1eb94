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

// Package wavwriter allows the sounds triggered on the sound chip to be
// written to disk as a WAV file. Note that the triggers are buffered in memory
// in their entirity and the audio is rendered and written to disk when
// EndMixing() is called. It is therefore only suitable for offline rendering
// and testing purposes.
//
// PCM sample sounds are rendered from their sample data. Synth sounds are
// rendered as a simple decaying square wave at the frequency of the trigger.
package wavwriter
