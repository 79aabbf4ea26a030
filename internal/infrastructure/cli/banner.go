package cli

import (
	"io"
	"math/rand"

	"github.com/fatih/color"
)

var welcomeMessages = []string{
	"WatchIt activated! I'm keeping an eye on those pesky errors for you.",
	"Error hunter extraordinaire at your service! Let's squash some bugs today.",
	"WatchIt is online. Your code's new best friend has arrived!",
	"Bug detection mode: ACTIVATED. I'll be your coding sidekick today!",
	"WatchIt is on duty. No error shall pass unnoticed!",
}

// PrintBanner prints a random welcome message before the monitored command runs.
func PrintBanner(out io.Writer) {
	msg := welcomeMessages[rand.Intn(len(welcomeMessages))]
	color.New(color.FgGreen, color.Bold).Fprintln(out, msg)
}
