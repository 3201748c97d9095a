package slider

const saveView = `<div class="testimonial-slider"><div class="carousel slide" data-ride="carousel" id="{{ group_id|safe }}">
<ol class="carousel-indicators">
{% for item in items %}<li data-target="#{{ group_id|safe }}" data-slide-to="{{ item.position }}"{% if item.active %} class="active"{% endif %}></li>
{% endfor %}</ol>
<div class="carousel-inner w-75 mx-auto">
{% for item in items %}<div class="{{ class_names("carousel-item", item.active_class) }}"><blockquote class="testimonial"><span class="testimonial-index" style="display: none">{{ item.index }}</span>
{% if item.content %}<p class="testimonial-text-container"><i class="fa fa-quote-left pull-left" aria-hidden="true"></i><span class="testimonial-text">{{ item.content|safe }}</span><i class="fa fa-quote-right pull-right" aria-hidden="true"></i></p>{% endif %}
<div class="testimonial-author-container">
{% if item.author %}<p class="testimonial-author-name"><span class="testimonial-author">&mdash; <span>{{ item.author|safe }}</span></span></p>{% endif %}
{% if item.link %}<p class="testimonial-author-container"><a target="_blank" href="{{ item.link|safe }}"><i class="fas fa-user"></i><span class="testimonial-author-link">{{ item.link|safe }}</span></a></p>{% endif %}
</div></blockquote></div>
{% endfor %}</div>
<a class="carousel-control-prev" href="#{{ group_id|safe }}" role="button" data-slide="prev"><span class="carousel-control-prev-icon" aria-hidden="true"><i class="fa fa-chevron-left"></i></span><span class="sr-only">{{ t(locale, "slider.previous") }}</span></a>
<a class="carousel-control-next" href="#{{ group_id|safe }}" role="button" data-slide="next"><span class="carousel-control-next-icon" aria-hidden="true"><i class="fa fa-chevron-right"></i></span><span class="sr-only">{{ t(locale, "slider.next") }}</span></a>
</div></div>`

const editView = `<div class="{{ class_names(wrapper_class, "testimonial-slider-editor") }}" data-group-id="{{ group_id|safe }}">
{% for item in items %}<div class="{{ class_names(wrapper_class) }}" data-index="{{ item.index }}">
<p><span>{{ t(locale, "slider.insert", item.number) }}</span><button type="button" class="remove-testimonial" data-action="remove" data-index="{{ item.index }}" title="{{ t(locale, "slider.remove", item.number) }}"><i class="fa fa-times"></i></button></p>
<blockquote class="wp-block-quote">
{{ item.content_input|safe }}
{{ item.author_input|safe }}
{{ item.link_input|safe }}
</blockquote>
</div>
{% endfor %}<button type="button" class="add-more-testimonial" data-action="add" title="{{ t(locale, "slider.add") }}">+</button>
</div>`
