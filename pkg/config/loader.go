/*
 * Copyright 2024 The Trickster Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import "errors"

var ErrNoCallouts = errors.New("no callouts configured")

// Load returns the Application Configuration, starting with a default
// config, then overriding with any provided config file, and finally flags
func Load(applicationName string, arguments []string) (*Config, *Flags, error) {

	c := NewConfig()
	flags, err := parseFlags(applicationName, arguments)
	if err != nil {
		return nil, flags, err
	}
	if flags.PrintVersion {
		return nil, flags, nil
	}
	if err := c.loadFile(flags.ConfigPath); err != nil {
		// a missing file at the default path is tolerated; a user-provided
		// path that cannot be loaded is returned for the caller to handle
		if flags.customPath {
			return nil, flags, err
		}
	}
	c.loadFlags(flags)

	if len(c.Callouts) == 0 {
		return nil, flags, ErrNoCallouts
	}
	if err := c.Callouts.Validate(); err != nil {
		return nil, flags, err
	}

	return c, flags, nil
}
