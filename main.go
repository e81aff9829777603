package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-transcriber/internal/acquire"
	"github.com/ytget/yt-transcriber/internal/config"
	"github.com/ytget/yt-transcriber/internal/pipeline"
	"github.com/ytget/yt-transcriber/internal/platform"
	"github.com/ytget/yt-transcriber/internal/transcribe"
	"github.com/ytget/yt-transcriber/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-transcriber"
	AppName = "YT Transcriber"

	WindowWidth  = 720
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("YT Transcriber v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	audioDir := settings.GetAudioDirectory()
	if err := platform.CreateDirectoryIfNotExists(audioDir); err != nil {
		log.Printf("failed to ensure audio dir: %v", err)
	}

	acquireSvc := acquire.NewService(audioDir)
	transcribeSvc := transcribe.NewService()
	pipelineSvc := pipeline.NewService(audioDir, acquireSvc, transcribeSvc)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, pipelineSvc)

	// Show and run
	myWindow.ShowAndRun()
}
