// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-form-cache/models"
)

const documentsTable = "documents"

// psql builds PostgreSQL-flavoured ($n) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// mergeDocument inserts the document or overlays the new body onto the stored
// one. Keys absent from the new body keep their stored value.
const mergeDocument = `INSERT INTO documents (collection, id, doc_updated, deleted, body)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (collection, id) DO UPDATE
	SET body        = documents.body || EXCLUDED.body,
	    doc_updated = EXCLUDED.doc_updated,
	    deleted     = EXCLUDED.deleted;`

func buildQueryDocuments(collection string, since int64) (string, []any, error) {
	b := psql.Select("body").
		From(documentsTable).
		Where(sq.Eq{"collection": collection})
	if since > 0 {
		b = b.Where(sq.Gt{"doc_updated": since})
	}

	query, args, err := b.OrderBy("doc_updated", "id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetDocument(collection, id string) (string, []any, error) {
	query, args, err := psql.Select("body").
		From(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDocument(collection, id string) (string, []any, error) {
	query, args, err := psql.Delete(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByEmail(email string) (string, []any, error) {
	query, args, err := psql.Select("body").
		From(documentsTable).
		Where(sq.Eq{"collection": models.UsersCollection}).
		Where(sq.Expr("body ->> 'email' = ?", email)).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
