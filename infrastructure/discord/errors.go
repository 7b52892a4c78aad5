package discord

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"team-bot/errors"

	"github.com/bwmarrin/discordgo"
)

// Target user is not connected to voice.
const errCodeTargetNotInVoice = 40032

// classify maps REST failures onto the relocation outcomes the services
// understand. Errors that are not REST errors are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var restErr *discordgo.RESTError
	if !stderrors.As(err, &restErr) {
		return err
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeMissingPermissions, discordgo.ErrCodeMissingAccess:
			return fmt.Errorf("%w: %v", errors.ErrForbidden, err)
		case errCodeTargetNotInVoice, discordgo.ErrCodeUnknownMember:
			return fmt.Errorf("%w: %v", errors.ErrNotConnected, err)
		}
	}
	if restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %v", errors.ErrForbidden, err)
	}
	return err
}

// isUnknownChannel reports whether the platform says the channel is gone.
func isUnknownChannel(err error) bool {
	var restErr *discordgo.RESTError
	if !stderrors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownChannel {
		return true
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
