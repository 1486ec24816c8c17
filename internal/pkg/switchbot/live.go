package switchbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
	"github.com/jake-scott/switchbot-unlock/version"
	"github.com/pkg/errors"
)

const DefaultAPIURL = "https://api.switch-bot.com"

type Live struct {
	baseURL    string
	creds      Credentials
	timeout    time.Duration
	httpClient *http.Client
	hmacSigner *HMACSigner
	ctx        context.Context
}

func NewLiveClient(creds Credentials) *Live {
	return &Live{
		baseURL:    DefaultAPIURL,
		creds:      creds,
		httpClient: http.DefaultClient,
		hmacSigner: NewHMACSigner(),
		ctx:        context.Background(),
	}
}

func (c *Live) WithTimeout(d time.Duration) SwitchBot {
	nc := *c
	nc.timeout = d
	return &nc
}

func (c *Live) WithContext(ctx context.Context) SwitchBot {
	nc := *c
	nc.ctx = ctx
	return &nc
}

func (c *Live) WithBaseURL(u string) *Live {
	nc := *c
	nc.baseURL = strings.TrimSuffix(u, "/")
	return &nc
}

func (c *Live) WithHTTPClient(cli *http.Client) *Live {
	nc := *c
	nc.httpClient = cli
	return &nc
}

func (c *Live) WithHMACSigner(s *HMACSigner) *Live {
	nc := *c
	nc.hmacSigner = s
	return &nc
}

func (c *Live) MakeContext() (context.Context, context.CancelFunc) {
	var ctx = c.ctx
	var cancel context.CancelFunc = func() {}
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(c.ctx, c.timeout)
	}

	return ctx, cancel
}

// PressButton sends a v1.0 press command, authenticated with the bearer token
func (c *Live) PressButton(deviceID string) (*CommandResult, error) {
	return c.sendCommand(apiV10, deviceID, newCommand(commandPress), BearerSigner{})
}

// UnlockDoor sends a v1.1 unlock command, authenticated with a signature
func (c *Live) UnlockDoor(deviceID string) (*CommandResult, error) {
	return c.sendCommand(apiV11, deviceID, newCommand(commandUnlock), c.hmacSigner)
}

func (c *Live) commandURL(apiVersion string, deviceID string) string {
	return fmt.Sprintf("%s/%s/devices/%s/commands", c.baseURL, apiVersion, url.PathEscape(deviceID))
}

func (c *Live) sendCommand(apiVersion string, deviceID string, command commandRequest, signer Signer) (*CommandResult, error) {
	ctx, cancel := c.MakeContext()
	defer cancel()

	ctxLogger := logging.Logger(ctx)

	reqBody, err := json.Marshal(command)
	if err != nil {
		return nil, newTransportError(errors.Wrap(err, "encoding SwitchBot command"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.commandURL(apiVersion, deviceID), bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, newTransportError(errors.Wrap(err, "creating SwitchBot request"))
	}

	req.Header.Set("Content-Type", "application/json; charset=utf8")
	req.Header.Set("User-Agent", "switchbot-unlock/"+version.Version)

	if err := signer.SignRequest(req, c.creds); err != nil {
		return nil, newTransportError(errors.Wrap(err, "signing SwitchBot request"))
	}

	ctxLogger.Debugf("sending %s command to SwitchBot %s device %s", command.Command, apiVersion, deviceID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError(errors.Wrapf(err, "executing %s command", command.Command))
	}
	defer resp.Body.Close()

	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(errors.Wrap(err, "reading response body"))
	}

	ctxLogger.Debugf("SwitchBot response: HTTP %d: %s", resp.StatusCode, bodyBytes)

	wire := commandResponse{}
	if err := json.Unmarshal(bodyBytes, &wire); err != nil {
		return nil, newTransportError(errors.Wrapf(err, "decoding SwitchBot response (HTTP %d)", resp.StatusCode))
	}

	if wire.StatusCode == nil {
		return nil, newTransportError(fmt.Errorf("unexpected SwitchBot response (HTTP %d): %s", resp.StatusCode, bodyBytes))
	}

	result := &CommandResult{
		StatusCode: *wire.StatusCode,
		Body:       wire.Body,
		Message:    wire.Message,
	}

	if result.StatusCode != StatusSuccess {
		return result, &VendorError{StatusCode: result.StatusCode, Message: result.Message}
	}

	return result, nil
}
