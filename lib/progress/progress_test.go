/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestProgress1(test *testing.T) {
  var buffer bytes.Buffer

  p := New(&buffer, 10, 10)
  for i := 0; i < 10; i++ {
    p.Increment()
  }
  s := buffer.String()
  if !strings.HasSuffix(s, "| 100.00%\n") {
    test.Error("test failed")
  }
  if strings.Count(s, __line_del__) != 10 {
    test.Error("test failed")
  }
}

func TestProgress2(test *testing.T) {
  p := New(nil, 4, 2)
  s := p.Exec(2)
  if !strings.HasSuffix(s, "|  50.00%") {
    test.Error("test failed")
  }
  if strings.Count(s, ">") != 19 {
    test.Errorf("test failed: %s", s)
  }
}
