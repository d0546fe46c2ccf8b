// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/utils"
	"github.com/MKhiriev/go-dni-gateway/models"
)

// Form values expected by the registry endpoint.
const (
	formAction = "consulta_dni_api"
	formPage   = "1"

	kindDNI  = "dni"
	kindName = "nombre"
)

type httpLookupAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	logger   *logger.Logger
}

// NewHTTPLookupAdapter constructs the resty implementation of [PersonLookup]
// posting to cfg.LookupURL.
func NewHTTPLookupAdapter(cfg config.Adapter, logger *logger.Logger) (PersonLookup, error) {
	endpoint, err := normalizeLookupURL(cfg.LookupURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLookupURL, err)
	}

	client := utils.NewHTTPClient(utils.WithTimeout(cfg.RequestTimeout))

	return &httpLookupAdapter{client: client, endpoint: endpoint, logger: logger}, nil
}

func normalizeLookupURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include http(s) scheme and host")
	}

	return u.String(), nil
}

// LookupByDNI implements [PersonLookup].
func (a *httpLookupAdapter) LookupByDNI(ctx context.Context, dni string) (models.PersonPayload, error) {
	return a.query(ctx, kindDNI, map[string]string{
		"dni": dni,
	})
}

// LookupByName implements [PersonLookup].
func (a *httpLookupAdapter) LookupByName(ctx context.Context, query models.NameQuery) (models.PersonPayload, error) {
	return a.query(ctx, kindName, map[string]string{
		"nombres": query.Nombres,
		"ap_pat":  query.ApPat,
		"ap_mat":  query.ApMat,
	})
}

func (a *httpLookupAdapter) query(ctx context.Context, kind string, params map[string]string) (models.PersonPayload, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	defer func() {
		upstreamRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	form := map[string]string{
		"action": formAction,
		"tipo":   kind,
		"pagina": formPage,
	}
	for k, v := range params {
		form[k] = v
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(form).
		Post(a.endpoint)
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(kind, outcomeTransport).Inc()
		log.Err(err).Str("kind", kind).Msg("upstream request failed")
		return models.PersonPayload{}, fmt.Errorf("lookup %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		upstreamRequestsTotal.WithLabelValues(kind, outcomeHTTPError).Inc()
		log.Err(err).Str("kind", kind).Int("status", resp.StatusCode()).Msg("upstream answered with error status")
		return models.PersonPayload{}, err
	}

	// the registry does not always label its JSON, so the body is decoded
	// here instead of through resty's content-type based result parsing
	var body models.UpstreamResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		upstreamRequestsTotal.WithLabelValues(kind, outcomeMalformed).Inc()
		log.Err(err).Str("kind", kind).Msg("upstream body is not a valid envelope")
		return models.PersonPayload{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	// "success": false is how the registry reports a query without matches;
	// whatever data it carries is passed on like any other result
	if !body.Success {
		upstreamRequestsTotal.WithLabelValues(kind, outcomeNoMatch).Inc()
		log.Debug().Str("kind", kind).Msg("upstream found no match")
		return body.Data, nil
	}

	upstreamRequestsTotal.WithLabelValues(kind, outcomeOK).Inc()
	return body.Data, nil
}
