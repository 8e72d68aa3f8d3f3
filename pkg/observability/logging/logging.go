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

// Package logging provides the application logger
package logging

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/trickstercache/b64callout/pkg/config"
	"github.com/trickstercache/b64callout/pkg/observability/logging/level"
	"github.com/trickstercache/b64callout/pkg/runtime"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var _ Logger = &logger{}

type Logger interface {
	SetLogLevel(level.Level)
	Level() level.Level
	Close()
	//
	Log(logLevel level.Level, event string, detail Pairs)
	Debug(event string, detail Pairs)
	Info(event string, detail Pairs)
	Warn(event string, detail Pairs)
	Error(event string, detail Pairs)
	Fatal(code int, event string, detail Pairs)
}

// Pairs represents key=value pairs that help to describe a log event
type Pairs map[string]any

// New returns a Logger for the provided configuration, writing to the
// console or to a rolled log file distinguished by the instance id
func New(conf *config.Config) Logger {
	l := &logger{now: time.Now}
	if conf.Logging.LogFile == "" {
		l.writer = os.Stdout
	} else {
		logFile := conf.Logging.LogFile
		if conf.Main.InstanceID > 0 {
			logFile = strings.Replace(logFile, ".log",
				"."+strconv.Itoa(conf.Main.InstanceID)+".log", 1)
		}
		lj := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    256, // megabytes
			MaxBackups: 80,
			MaxAge:     7, // days
			Compress:   true,
		}
		l.writer = lj
		l.closer = lj
	}
	l.SetLogLevel(level.Level(conf.Logging.LogLevel))
	return l
}

// ConsoleLogger returns a Logger that writes events to stdout
func ConsoleLogger(logLevel level.Level) Logger {
	l := &logger{
		writer: os.Stdout,
		now:    time.Now,
	}
	l.SetLogLevel(logLevel)
	return l
}

// StreamLogger returns a Logger that writes events to the provided writer
func StreamLogger(w io.Writer, logLevel level.Level) Logger {
	l := &logger{
		writer: w,
		now:    time.Now,
	}
	if c, ok := l.writer.(io.Closer); ok && c != nil {
		l.closer = c
	}
	l.SetLogLevel(logLevel)
	return l
}

// NoopLogger returns a Logger that discards all events
func NoopLogger() Logger {
	return &logger{
		levelID: level.InfoID,
		level:   level.Info,
		now:     time.Now,
	}
}

type logger struct {
	level   level.Level
	levelID level.ID
	writer  io.Writer
	closer  io.Closer
	mtx     sync.Mutex
	now     func() time.Time
}

func (l *logger) SetLogLevel(logLevel level.Level) {
	id := level.GetID(logLevel)
	if id == 0 {
		l.log(level.Warn, "unknown log level; using info",
			Pairs{"providedLevel": string(logLevel)})
		logLevel = level.Info
		id = level.InfoID
	}
	l.level = logLevel
	l.levelID = id
}

func (l *logger) Level() level.Level {
	return l.level
}

func (l *logger) Log(logLevel level.Level, event string, detail Pairs) {
	lid := level.GetID(logLevel)
	if lid == 0 || lid < l.levelID {
		return
	}
	l.log(logLevel, event, detail)
}

func (l *logger) Debug(event string, detail Pairs) {
	if l.levelID > level.DebugID {
		return
	}
	l.log(level.Debug, event, detail)
}

func (l *logger) Info(event string, detail Pairs) {
	if l.levelID > level.InfoID {
		return
	}
	l.log(level.Info, event, detail)
}

func (l *logger) Warn(event string, detail Pairs) {
	if l.levelID > level.WarnID {
		return
	}
	l.log(level.Warn, event, detail)
}

func (l *logger) Error(event string, detail Pairs) {
	if l.levelID > level.ErrorID {
		return
	}
	l.log(level.Error, event, detail)
}

func (l *logger) Fatal(code int, event string, detail Pairs) {
	l.log(level.Fatal, event, detail)
	if code < 0 {
		// tests send a negative code to avoid exiting the process
		return
	}
	if code == 0 {
		code = 1
	}
	os.Exit(code)
}

func (l *logger) Close() {
	if l.closer != nil {
		l.closer.Close()
	}
}

const (
	space   = " "
	equal   = "="
	newline = "\n"
)

func (l *logger) log(logLevel level.Level, event string, detail Pairs) {
	if l.writer == nil {
		return
	}
	ts := l.now()
	event = strings.TrimSpace(event)

	logLine := "time=" + ts.UTC().Format(time.RFC3339Nano) + space +
		"app=" + runtime.ApplicationName + space +
		"level=" + string(logLevel) + space +
		"event=" + quoteAsNeeded(event)

	if len(detail) > 0 {
		keys := make([]string, 0, len(detail))
		for k := range detail {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, cmp.Compare)
		for _, k := range keys {
			logLine += space + k + equal + quoteAsNeeded(stringValue(detail[k]))
		}
	}

	l.mtx.Lock()
	l.writer.Write([]byte(logLine + newline))
	l.mtx.Unlock()
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}
	return fmt.Sprintf("%v", v)
}

func quoteAsNeeded(input string) string {
	if !strings.Contains(input, space) {
		return input
	}
	return `"` + strings.ReplaceAll(input, `"`, `\"`) + `"`
}
