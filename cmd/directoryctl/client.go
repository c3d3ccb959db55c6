package main

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

func newClient() *resty.Client {
	return resty.New().SetBaseURL(apiFlag)
}

func check(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

func doGet(path string, query map[string]string) ([]byte, error) {
	req := newClient().R()
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	return check(resp, err)
}

func doPost(path string, payload interface{}) ([]byte, error) {
	resp, err := newClient().R().SetBody(payload).Post(path)
	return check(resp, err)
}

func doPatch(path string, payload interface{}) ([]byte, error) {
	resp, err := newClient().R().SetBody(payload).Patch(path)
	return check(resp, err)
}
