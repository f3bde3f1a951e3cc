package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gopassport/internal/client/client"
	"github.com/dmitrijs2005/gopassport/internal/client/models"
	"github.com/dmitrijs2005/gopassport/internal/client/services"
	"github.com/dmitrijs2005/gopassport/internal/passport"
)

const timeLayout = "2006-01-02 15:04:05"

var errUsage = errors.New("usage")

// parseCheckinArgs reads "<checkpoint> <lat> <lng> [code=X] [acc=M] [photo=KEY]".
func parseCheckinArgs(userID string, args []string) (*models.PendingCheckin, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%w: checkin <checkpoint> <lat> <lng> [code=X] [acc=M] [photo=KEY]", errUsage)
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, fmt.Errorf("latitude %q: %w", args[1], err)
	}
	lng, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return nil, fmt.Errorf("longitude %q: %w", args[2], err)
	}

	a := &models.PendingCheckin{UserID: userID, CheckpointID: args[0], Latitude: lat, Longitude: lng}
	for _, opt := range args[3:] {
		k, v, ok := strings.Cut(opt, "=")
		if !ok {
			return nil, fmt.Errorf("%w: option %q is not key=value", errUsage, opt)
		}
		switch k {
		case "code":
			a.PartnerCode = v
		case "photo":
			a.PhotoRef = v
		case "acc":
			acc, err := strconv.ParseFloat(v, 64)
			if err != nil || acc < 0 {
				return nil, fmt.Errorf("accuracy %q: must be a non-negative number", v)
			}
			a.AccuracyM = &acc
		default:
			return nil, fmt.Errorf("%w: unknown option %q", errUsage, k)
		}
	}
	return a, nil
}

func (a *App) CheckIn(ctx context.Context, args []string) error {
	attempt, err := parseCheckinArgs(a.userID, args)
	if err != nil {
		a.printf("%v\n", err)
		return err
	}

	res, err := a.checkins.CheckIn(ctx, attempt)
	if err != nil {
		a.printError(err)
		return err
	}

	if res.Drained.Synced+res.Drained.Failed > 0 {
		a.printSync("Synced earlier check-ins", res.Drained, nil)
	}
	if res.Queued {
		a.printf("Saved offline as %s. It will be sent when the server is reachable.\n", res.LocalID)
		return nil
	}

	v := res.Verdict
	a.printf("Stamp collected at %s: +%d points.\n", v.Stamp.CheckpointID, v.Stamp.Points)
	if v.Progress.RouteID != "" {
		a.printf("Route %s: %d%% complete.\n", v.Progress.RouteID, v.Progress.CompletionPercentage)
	}
	if v.RouteCompleted {
		a.printf("Route completed!\n")
	}
	for _, r := range v.Rewards {
		a.printf("Reward unlocked: %s\n", r.Title)
	}
	return nil
}

func (a *App) Sync(ctx context.Context) error {
	if !a.isOnline() {
		a.printf("Offline; queued check-ins will be sent automatically.\n")
		return nil
	}
	res, err := a.checkins.SyncPending(ctx, a.userID)
	a.printSync("Sync", res, err)
	return err
}

func (a *App) Pending(ctx context.Context) error {
	items, err := a.checkins.Pending(ctx, a.userID)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(items) == 0 {
		a.printf("No queued check-ins.\n")
		return nil
	}
	for _, it := range items {
		a.printf("%s  %-16s  %s\n", it.LocalID, it.CheckpointID, it.CapturedAt.Local().Format(timeLayout))
	}
	return nil
}

func (a *App) Failed(ctx context.Context) error {
	items, err := a.checkins.Failed(ctx, a.userID)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(items) == 0 {
		a.printf("No failed check-ins.\n")
		return nil
	}
	for _, it := range items {
		a.printf("%s  %-16s  %s  %s\n", it.LocalID, it.CheckpointID, it.CapturedAt.Local().Format(timeLayout), describeReason(it.SyncError))
	}
	a.printf("Use 'dismiss <id>' to clear a notice.\n")
	return nil
}

func (a *App) Dismiss(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("Usage: dismiss <id>\n")
		return errUsage
	}
	if err := a.checkins.Dismiss(ctx, args[0]); err != nil {
		a.printError(err)
		return err
	}
	a.printf("Dismissed %s.\n", args[0])
	return nil
}

func (a *App) Purge(ctx context.Context) error {
	n, err := a.checkins.Purge(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	a.printf("Removed %d synced check-ins.\n", n)
	return nil
}

func (a *App) Progress(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("Usage: progress <route>\n")
		return errUsage
	}
	p, err := a.passports.Progress(ctx, args[0])
	if err != nil {
		a.printError(err)
		return err
	}
	a.printf("Route %s: %d/%d fragments, %d%%\n", p.RouteID, p.CollectedFragments, p.TotalFragments, p.CompletionPercentage)
	for _, f := range p.Fragments {
		mark := " "
		if f.Collected {
			mark = "x"
		}
		a.printf("  [%s] #%d %s\n", mark, f.FragmentIndex, f.CheckpointID)
	}
	return nil
}

func (a *App) Passport(ctx context.Context) error {
	v, err := a.passports.Passport(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	p := v.Passport
	a.printf("Passport %s\n", p.Number)
	a.printf("Stamps: %d  Points: %d  Routes completed: %d\n", p.TotalStamps, p.TotalPoints, p.CompletedRoutes)
	for _, s := range v.Stamps {
		a.printf("  %s  %-16s  %-12s  +%d\n", s.CreatedAt.Local().Format(timeLayout), s.CheckpointID, s.RouteID, s.Points)
	}
	for _, g := range v.Grants {
		a.printf("  reward %s (route %s)\n", g.RewardID, g.RouteID)
	}
	return nil
}

var photoTypes = map[string]bool{"image/jpeg": true, "image/png": true, "image/webp": true}

func (a *App) Photo(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("Usage: photo <file>\n")
		return errUsage
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		a.printError(err)
		return err
	}
	ct := http.DetectContentType(data)
	if !photoTypes[ct] {
		err := fmt.Errorf("unsupported photo type %s", ct)
		a.printError(err)
		return err
	}

	key, err := a.passports.UploadPhoto(ctx, data, ct)
	if err != nil {
		a.printError(err)
		return err
	}
	a.printf("Photo uploaded. Attach it with: photo=%s\n", key)
	return nil
}

func (a *App) Status(ctx context.Context) error {
	st, err := a.checkins.Status(ctx, a.userID)
	if err != nil {
		a.printError(err)
		return err
	}
	mode := "offline"
	if st.Online {
		mode = "online"
	}
	last := "never"
	if !st.LastSyncAt.IsZero() {
		last = st.LastSyncAt.Local().Format(timeLayout)
	}
	a.printf("User %s, %s. Queued: %d. Last sync: %s.\n", a.userID, mode, st.Unsynced, last)
	return nil
}

func (a *App) printSync(title string, res services.SyncResult, err error) {
	a.printf("%s: %d sent, %d refused, %d waiting.\n", title, res.Synced, res.Failed, res.Remaining)
	for _, f := range res.Failures {
		a.printf("  #%d %s captured %s: %s\n", f.Position, f.CheckpointID, f.CapturedAt.Local().Format(timeLayout), describeReason(f.Reason))
	}
	if err != nil {
		a.printError(err)
	}
}

func (a *App) printError(err error) {
	var ce *passport.CheckinError
	switch {
	case errors.As(err, &ce):
		a.printf("Check-in refused: %v\n", ce)
	case errors.Is(err, client.ErrUnauthorized):
		a.printf("Access token rejected; restart with a fresh token.\n")
	case errors.Is(err, client.ErrUnavailable):
		a.printf("Server unavailable, try again later.\n")
	default:
		a.printf("Error: %v\n", err)
	}
}

// describeReason turns a stored failure reason into user-facing text.
func describeReason(reason string) string {
	if kind, ok := passport.ParseKind(reason); ok {
		return (&passport.CheckinError{Kind: kind}).Error()
	}
	return reason
}
