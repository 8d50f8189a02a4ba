// Package checkapi carries the wire types and client calls for talking
// to a wordcheck server.
package checkapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gitlab.com/pnathan/wordcheck/src/lib/log"
)

// CheckRequest is the word list to vet, exactly as the caller ordered it.
type CheckRequest struct {
	Words []string `json:"words"`
}

// CheckResponse lists the words absent from the server's dictionary, in
// request order, duplicates intact.
type CheckResponse struct {
	Incorrect []string `json:"incorrect"`
}

// DictionaryStatus describes the dictionary a server is holding.
type DictionaryStatus struct {
	// Words is the count of distinct dictionary entries.
	Words int `json:"words"`
	// Fingerprint is the hex digest of the dictionary contents; two
	// servers with equal fingerprints give equal answers.
	Fingerprint string `json:"fingerprint"`
}

func PostCheck(words []string, addr string) (*CheckResponse, error) {
	text, err := json.Marshal(CheckRequest{Words: words})
	if err != nil {
		return nil, err
	}
	formulatedAddress := fmt.Sprintf("%v/api/check", addr)

	resp, err := httpPost(formulatedAddress, text)
	if err != nil {
		log.Printf("error reaching server %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, fmt.Errorf("bad request")
	case http.StatusInternalServerError:
		return nil, fmt.Errorf("something went sideways")
	case http.StatusOK:
	default:
		return nil, fmt.Errorf("unexpected status %v", resp.StatusCode)
	}

	result := &CheckResponse{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, err
	}
	return result, nil
}

func GetStatus(addr string) (*DictionaryStatus, error) {
	formulatedAddress := fmt.Sprintf("%v/api/dictionary", addr)
	resp, err := http.Get(formulatedAddress)
	if err != nil {
		log.Warn("http error", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %v", resp.StatusCode)
	}

	result := &DictionaryStatus{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, err
	}
	return result, nil
}

func httpPost(addr string, text []byte) (*http.Response, error) {
	log.Info("calling server", zap.String("endpoint", addr))
	buf := bytes.NewBuffer(text)
	client := &http.Client{}
	req, err := http.NewRequest(http.MethodPost, addr, buf)
	if err != nil {
		log.Warn("http error", zap.Error(err), zap.String("host", addr))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return client.Do(req)
}
