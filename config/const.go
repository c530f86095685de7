package config

import "strings"

// AppVersion is the version of the application.
var AppVersion string // Set with -ldflags "-X github.com/dixieflatline76/DayNight/config.AppVersion=..."

// AppName is the name of the application.
const AppName = "DayNight"

// AppID is the unique application ID used to scope preferences.
const AppID = "com.dixieflatline76.daynight"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// RenderSubDir is the sub directory, under the config path, for rendered wallpapers.
const RenderSubDir = "rendered"

// ModelSubDir holds detection models under the config directory.
const ModelSubDir = "models"

// FaceModelName is the file name of the pigo face cascade.
const FaceModelName = "facefinder"
