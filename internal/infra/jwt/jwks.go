package jwt

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const keySetCacheKey = "jwks"

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

// KeySet guarda as chaves públicas do provedor por kid. Uma busca que falha
// não vai para o cache; a próxima chamada tenta de novo.
// TODO: buscar de novo ao receber kid desconhecido quando o provedor passar a rotacionar chaves.
type KeySet struct {
	url    string
	client *http.Client
	cache  *cache.Cache
	group  singleflight.Group
}

func NewKeySet(url string, client *http.Client) *KeySet {
	if client == nil {
		client = http.DefaultClient
	}
	return &KeySet{
		url:    url,
		client: client,
		cache:  cache.New(cache.NoExpiration, 0),
	}
}

func (s *KeySet) Keys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	if v, found := s.cache.Get(keySetCacheKey); found {
		return v.(map[string]*rsa.PublicKey), nil
	}

	// A busca compartilhada não herda o cancelamento de quem chegou primeiro;
	// o timeout do http.Client continua limitando a espera.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(keySetCacheKey, func() (interface{}, error) {
		if v, found := s.cache.Get(keySetCacheKey); found {
			return v, nil
		}
		keys, err := s.fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(keySetCacheKey, keys, cache.NoExpiration)
		return keys, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, res.Err)
		}
		return res.Val.(map[string]*rsa.PublicKey), nil
	}
}

func (s *KeySet) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	var set jsonWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}
	return keys, nil
}

func (k jsonWebKey) publicKey() (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}
