package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artem13815/portfolio/pkg/admin"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/experience"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/project"
	"github.com/artem13815/portfolio/pkg/text"
	"github.com/artem13815/portfolio/pkg/validate"
)

// describe renders API and form errors for the terminal.
func describe(err error) string {
	var fields validate.Errors
	var reqErr *client.RequestError
	switch {
	case errors.As(err, &reqErr):
		if len(reqErr.Fields) > 0 {
			return validate.Errors(reqErr.Fields).Error()
		}
		return reqErr.Message
	case errors.As(err, &fields):
		return fields.Error()
	}
	return err.Error()
}

// formErr prefers the field errors an editor collected.
func formErr(err error, errs validate.Errors) error {
	if len(errs) > 0 {
		return errs
	}
	return err
}

func table(header ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	return w
}

func idArg(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func loginCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the token in the session file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				line, _ := a.in.ReadString('\n')
				password = strings.TrimRight(line, "\r\n")
			}
			res, err := a.shell.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s (id %d)\n", res.Username, res.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "admin", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when empty)")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the token and clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.shell.Logout(cmd.Context())
		},
	}
}

func profileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "profile", Short: "Show or edit the owner profile"}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.api.Profile(cmd.Context(), a.sess.Authenticated())
			if err != nil {
				return err
			}
			u := data.User
			fmt.Printf("%s <%s>\n%s\nmedia: %s (%s)\n", u.FullName(), u.Email, u.Bio, u.ProfilePhoto, profile.KindOf(u.ProfilePhoto))
			return nil
		},
	})

	var first, last, email, bio, media, photo string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			f := ws.Profile
			ctx := cmd.Context()
			if err := f.Load(ctx); err != nil {
				return err
			}
			if err := f.BeginEdit(); err != nil {
				return err
			}
			err = f.Edit(func(p *profile.Profile) {
				changed := cmd.Flags().Changed
				if changed("first-name") {
					p.FirstName = first
				}
				if changed("last-name") {
					p.LastName = last
				}
				if changed("email") {
					p.Email = email
				}
				if changed("bio") {
					p.Bio = bio
				}
				if changed("media") {
					p.ProfilePhoto = media
				}
			})
			if err != nil {
				return err
			}
			if photo != "" {
				if err := uploadPhoto(ctx, f, photo); err != nil {
					return err
				}
			}
			if err := f.Submit(ctx); err != nil {
				return formErr(err, f.Errors())
			}
			fmt.Println(f.Notice())
			return nil
		},
	}
	set.Flags().StringVar(&first, "first-name", "", "first name")
	set.Flags().StringVar(&last, "last-name", "", "last name")
	set.Flags().StringVar(&email, "email", "", "contact e-mail")
	set.Flags().StringVar(&bio, "bio", "", "short biography")
	set.Flags().StringVar(&media, "media", "", "photo or animation URL")
	set.Flags().StringVar(&photo, "photo", "", "local image to upload as the profile photo")
	cmd.AddCommand(set)
	return cmd
}

func uploadPhoto(ctx context.Context, f *admin.ProfileForm, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	u, err := admin.NewUpload(file.Name(), file)
	if err != nil {
		return err
	}
	_, err = f.UploadPhoto(ctx, u)
	return err
}

func projectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "projects", Short: "Manage projects"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if err := ws.Projects.Refresh(cmd.Context()); err != nil {
				return err
			}
			w := table("ID", "TITLE", "ROLE", "ACTIVE", "TECH")
			for _, p := range ws.Projects.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n", p.ID, p.Title, p.Role, p.IsActive, strings.Join(p.Technologies, ", "))
			}
			return w.Flush()
		},
	})

	var p project.Project
	var tech, url, github string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			p.Technologies = text.SplitList(tech)
			if url != "" {
				p.ProjectURL = &url
			}
			if github != "" {
				p.GithubURL = &github
			}
			if err := ws.Projects.BeginCreate(p); err != nil {
				return err
			}
			if err := ws.Projects.Submit(cmd.Context()); err != nil {
				return formErr(err, ws.Projects.Errors())
			}
			fmt.Println(ws.Projects.Notice())
			return nil
		},
	}
	create.Flags().StringVar(&p.Title, "title", "", "project title")
	create.Flags().StringVar(&p.Description, "description", "", "description")
	create.Flags().StringVar(&p.Role, "role", "", "your role")
	create.Flags().StringVar(&tech, "tech", "", "comma separated technologies")
	create.Flags().StringVar(&url, "url", "", "live URL")
	create.Flags().StringVar(&github, "github", "", "repository URL")
	create.Flags().BoolVar(&p.IsActive, "active", false, "show on the public page")
	cmd.AddCommand(create)

	var active bool
	toggle := &cobra.Command{
		Use:   "activate <id>",
		Short: "Show or hide a project on the public page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args[0])
			if err != nil {
				return err
			}
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			ed := ws.Projects
			if err := ed.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := ed.BeginEdit(id); err != nil {
				return err
			}
			if err := ed.Edit(func(p *project.Project) { p.IsActive = active }); err != nil {
				return err
			}
			if err := ed.Submit(cmd.Context()); err != nil {
				return formErr(err, ed.Errors())
			}
			fmt.Println(ed.Notice())
			return nil
		},
	}
	toggle.Flags().BoolVar(&active, "on", true, "set false to hide")
	cmd.AddCommand(toggle)

	cmd.AddCommand(deleteCmd(a, "project", func(ws *admin.Workspace) deleter { return ws.Projects }))
	return cmd
}

// deleter is the delete side of any editor.
type deleter interface {
	Refresh(ctx context.Context) error
	Delete(ctx context.Context, id int64, confirm admin.Confirmer) error
	Notice() string
}

func deleteCmd(a *app, noun string, pick func(*admin.Workspace) deleter) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args[0])
			if err != nil {
				return err
			}
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			ed := pick(ws)
			var confirm admin.Confirmer = a
			if yes {
				confirm = admin.ConfirmFunc(func(string) bool { return true })
			}
			if err := ed.Delete(cmd.Context(), id, confirm); err != nil {
				if errors.Is(err, admin.ErrCancelled) {
					fmt.Println("cancelled")
					return nil
				}
				return err
			}
			fmt.Println(ed.Notice())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func skillsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "skills", Short: "Manage skills"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List skills, one row per name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if err := ws.Skills.Refresh(cmd.Context()); err != nil {
				return err
			}
			w := table("KEY", "CATEGORY", "SKILL")
			for _, r := range ws.Skills.Rows() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Key, r.Category, r.Name)
			}
			return w.Flush()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "List skill categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := a.api.Categories(cmd.Context())
			if err != nil {
				return err
			}
			sort.Slice(cats.Items, func(i, j int) bool { return cats.Items[i].Name < cats.Items[j].Name })
			w := table("ID", "NAME", "DESCRIPTION")
			for _, c := range cats.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
			}
			return w.Flush()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add <category-id> <name>",
		Short: "Add a skill to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catID, err := idArg(args[0])
			if err != nil {
				return err
			}
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if err := ws.Skills.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := ws.Skills.AddSkill(cmd.Context(), catID, args[1]); err != nil {
				return formErr(err, ws.Skills.Errors())
			}
			fmt.Println(ws.Skills.Notice())
			return nil
		},
	})
	var yes bool
	remove := &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove one skill by its row key (see skills list)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if err := ws.Skills.Refresh(cmd.Context()); err != nil {
				return err
			}
			for _, r := range ws.Skills.Rows() {
				if r.Key != args[0] {
					continue
				}
				var confirm admin.Confirmer = a
				if yes {
					confirm = admin.ConfirmFunc(func(string) bool { return true })
				}
				if err := ws.Skills.RemoveRow(cmd.Context(), r, confirm); err != nil {
					if errors.Is(err, admin.ErrCancelled) {
						fmt.Println("cancelled")
						return nil
					}
					return err
				}
				fmt.Println(ws.Skills.Notice())
				return nil
			}
			return fmt.Errorf("no skill with key %q", args[0])
		},
	}
	remove.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.AddCommand(remove)
	return cmd
}

func linksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "links", Short: "Manage social links"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List social links",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if err := ws.Links.Refresh(cmd.Context()); err != nil {
				return err
			}
			w := table("ID", "PLATFORM", "URL", "ACTIVE")
			for _, l := range ws.Links.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", l.ID, l.Platform, l.URL, l.IsActive)
			}
			return w.Flush()
		},
	})
	var l profile.SocialLink
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a social link",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if err := ws.Links.BeginCreate(l); err != nil {
				return err
			}
			if err := ws.Links.Submit(cmd.Context()); err != nil {
				return formErr(err, ws.Links.Errors())
			}
			fmt.Println(ws.Links.Notice())
			return nil
		},
	}
	create.Flags().StringVar(&l.Platform, "platform", "", "one of: "+strings.Join(profile.Platforms, ", "))
	create.Flags().StringVar(&l.URL, "url", "", "link URL (mailto:/tel: for email and phone)")
	create.Flags().BoolVar(&l.IsActive, "active", true, "show on the public page")
	cmd.AddCommand(create)
	cmd.AddCommand(deleteCmd(a, "social link", func(ws *admin.Workspace) deleter { return ws.Links }))
	return cmd
}

func experienceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "experience", Short: "Manage work experience"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if err := ws.Experience.Refresh(cmd.Context()); err != nil {
				return err
			}
			w := table("ID", "COMPANY", "POSITION", "PERIOD")
			for _, e := range ws.Experience.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Company, e.Position, e.Period())
			}
			return w.Flush()
		},
	})
	var e experience.Experience
	var end, tech string
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a job",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if end != "" {
				e.EndDate = &end
			}
			e.Technologies = text.SplitList(tech)
			if err := ws.Experience.BeginCreate(e); err != nil {
				return err
			}
			if err := ws.Experience.Submit(cmd.Context()); err != nil {
				return formErr(err, ws.Experience.Errors())
			}
			fmt.Println(ws.Experience.Notice())
			return nil
		},
	}
	create.Flags().StringVar(&e.Company, "company", "", "company name")
	create.Flags().StringVar(&e.Position, "position", "", "job title")
	create.Flags().StringVar(&e.Description, "description", "", "what you did")
	create.Flags().StringVar(&e.StartDate, "start", "", "start date YYYY-MM-DD")
	create.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD")
	create.Flags().BoolVar(&e.IsCurrent, "current", false, "still working there")
	create.Flags().StringVar(&tech, "tech", "", "comma separated technologies")
	cmd.AddCommand(create)
	cmd.AddCommand(deleteCmd(a, "experience", func(ws *admin.Workspace) deleter { return ws.Experience }))
	return cmd
}

func blogsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "blogs", Short: "Manage blog posts"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your posts, drafts included",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if err := ws.Blogs.Refresh(cmd.Context()); err != nil {
				return err
			}
			w := table("ID", "SLUG", "STATUS", "VIEWS", "TITLE")
			for _, p := range ws.Blogs.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", p.ID, p.Slug, p.Status, p.Views, p.Title)
			}
			return w.Flush()
		},
	})

	var p blog.Post
	var tags, contentFile, status, image string
	create := &cobra.Command{
		Use:   "create",
		Short: "Write a new post",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			if contentFile != "" {
				data, err := os.ReadFile(contentFile)
				if err != nil {
					return err
				}
				p.Content = string(data)
			}
			p.Tags = text.SplitList(tags)
			p.Status = blog.Status(status)
			ed := ws.Blogs
			if err := ed.BeginCreate(blog.Post{}); err != nil {
				return err
			}
			slug := p.Slug
			if err := admin.SetBlogTitle(ed, p.Title); err != nil {
				return err
			}
			err = ed.Edit(func(d *blog.Post) {
				if slug != "" {
					d.Slug = slug
				}
				d.Content, d.Tags, d.Status = p.Content, p.Tags, p.Status
				d.Excerpt, d.IsFeatured = p.Excerpt, p.IsFeatured
			})
			if err != nil {
				return err
			}
			if image != "" {
				if err := uploadCover(cmd.Context(), a, ed, image); err != nil {
					return err
				}
			}
			if err := ed.Submit(cmd.Context()); err != nil {
				return formErr(err, ed.Errors())
			}
			fmt.Println(ed.Notice())
			return nil
		},
	}
	create.Flags().StringVar(&p.Title, "title", "", "post title")
	create.Flags().StringVar(&p.Slug, "slug", "", "URL slug (derived from the title when empty)")
	create.Flags().StringVar(&p.Content, "content", "", "post body")
	create.Flags().StringVar(&contentFile, "content-file", "", "read the body from a file")
	create.Flags().StringVar(&p.Excerpt, "excerpt", "", "summary (derived when empty)")
	create.Flags().StringVar(&tags, "tags", "", "comma separated tags")
	create.Flags().StringVar(&status, "status", string(blog.StatusDraft), "draft, published or archived")
	create.Flags().BoolVar(&p.IsFeatured, "featured", false, "feature the post")
	create.Flags().StringVar(&image, "image", "", "local cover image to upload")
	cmd.AddCommand(create)

	var publish string
	setStatus := &cobra.Command{
		Use:   "status <id>",
		Short: "Change the status of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args[0])
			if err != nil {
				return err
			}
			ws, err := a.workspace()
			if err != nil {
				return err
			}
			ed := ws.Blogs
			if err := ed.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := ed.BeginEdit(id); err != nil {
				return err
			}
			if err := ed.Edit(func(d *blog.Post) { d.Status = blog.Status(publish) }); err != nil {
				return err
			}
			if err := ed.Submit(cmd.Context()); err != nil {
				return formErr(err, ed.Errors())
			}
			fmt.Println(ed.Notice())
			return nil
		},
	}
	setStatus.Flags().StringVar(&publish, "set", string(blog.StatusPublished), "new status")
	cmd.AddCommand(setStatus)

	cmd.AddCommand(deleteCmd(a, "blog post", func(ws *admin.Workspace) deleter { return ws.Blogs }))
	return cmd
}

func uploadCover(ctx context.Context, a *app, ed *admin.Editor[blog.Post], path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	u, err := admin.NewUpload(file.Name(), file)
	if err != nil {
		return err
	}
	_, err = admin.UploadInto(ctx, ed, u, a.api.UploadImage, func(p *blog.Post, url string) { p.FeaturedImage = url })
	return err
}
