package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hostbind/droid-bridge/compat"
	"github.com/hostbind/droid-bridge/hostsim"
	"github.com/hostbind/droid-bridge/notify"
	"github.com/hostbind/droid-bridge/resources"
)

func main() {
	var (
		profilePath = flag.String("profile", "", "Path to YAML device profile")
		apiLevel    = flag.Int("api", 0, "Override the device API level")
		channelID   = flag.String("channel", "alerts", "Notification channel id")
		title       = flag.String("title", "", "Notification title")
		text        = flag.String("text", "", "Notification body text")
		icon        = flag.String("icon", "ic_notify", "Icon resource name")
		id          = flag.Int("id", 1, "Notification id")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		compat.SetLogger(log)
		hostsim.SetLogger(log)
	}

	profile := hostsim.DefaultProfile()
	if *profilePath != "" {
		p, err := hostsim.LoadProfile(*profilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		profile = p
	}
	if *apiLevel > 0 {
		profile.APILevel = int32(*apiLevel)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(profile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *title == "" {
		fmt.Fprintln(os.Stderr, "Usage: notifysim -title <text> [-text body] [-icon name] [-id n]")
		fmt.Fprintln(os.Stderr, "       notifysim -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(profile, *channelID, *title, *text, *icon, int32(*id)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(profile *hostsim.Profile, channelID, title, text, icon string, id int32) error {
	device := hostsim.NewDevice(profile)

	env, err := compat.New(device, device.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Device: api level %d\n", device.API())

	if err := notify.CreateChannel(env, notify.Channel{
		ID:         channelID,
		Name:       "Alerts",
		Importance: notify.ImportanceDefault,
	}); err != nil {
		return fmt.Errorf("create channel: %w", err)
	}

	res, err := resources.NewManager(env)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	iconID, err := res.ID(icon, resources.KindDrawable)
	if err != nil {
		return fmt.Errorf("icon lookup: %w", err)
	}

	b, err := notify.NewBuilder(env, channelID)
	if err != nil {
		return fmt.Errorf("builder: %w", err)
	}
	if _, err := b.SetTitle(title); err != nil {
		return err
	}
	if _, err := b.SetText(text); err != nil {
		return err
	}
	if _, err := b.SetAutoCancel(true); err != nil {
		return err
	}
	if _, err := b.SetSmallIcon(iconID); err != nil {
		return err
	}

	mgr, err := notify.NewManager(env)
	if err != nil {
		return fmt.Errorf("manager: %w", err)
	}
	if err := mgr.Notify(b, id); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	for _, dl := range device.Delivered() {
		fmt.Printf("Delivered #%d: %q / %q (channel %q, icon %d, via %s)\n",
			dl.ID, dl.Title, dl.Text, dl.ChannelID, dl.Icon, dl.Via)
	}
	for _, ch := range device.Channels() {
		fmt.Printf("Channel registered: %s (%s, importance %d)\n", ch.ID, ch.Name, ch.Importance)
	}
	if len(device.Channels()) == 0 {
		fmt.Println("No channel registered (host predates channels)")
	}
	return nil
}
